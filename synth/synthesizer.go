// Package synth merges the contributions of a session round into phase
// syntheses and, at the end of a run, into one final structured response
// with an aggregate confidence score.
package synth

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/logging"
	"github.com/cwbhub/hivemind/participant"
)

// Synthetic participant ids attached to synthesized contributions.
const (
	AnalysisSynthesisID      = "synthesis_analysis"
	CollaborationSynthesisID = "synthesis_collaboration"
)

// Fixed confidences for the per-phase syntheses; the collaboration phase
// synthesis is trusted slightly higher because its inputs were already
// cross-checked pairwise.
const (
	analysisSynthesisConfidence      = 0.85
	collaborationSynthesisConfidence = 0.88
)

// maxConfidence caps the aggregate confidence: the engine never reports
// certainty.
const maxConfidence = 0.95

// diversityBonusPerParticipant and maxDiversityBonus bound the confidence
// lift earned by distinct contributing participants.
const (
	diversityBonusPerParticipant = 0.02
	maxDiversityBonus            = 0.1
)

// Synthesizer combines multiple perspectives into integrated outputs. It is
// a pure data transform: no suspension points, deterministic for identical
// input ordering.
type Synthesizer struct {
	hierarchy map[string]int
	leadID    string
	logger    logging.Logger
}

// Options configures a Synthesizer.
type Options struct {
	// Hierarchy weighs participants when the hierarchical strategy applies.
	// Defaults to the default team's hierarchy.
	Hierarchy map[string]int
	// LeadID designates the participant whose presence switches the
	// strategy to hierarchical. Defaults to the strategic lead of the
	// default team.
	LeadID string
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// DefaultHierarchy returns the synthesis weights for the default team.
func DefaultHierarchy() map[string]int {
	return map[string]int{
		"cto":       10,
		"architect": 9,
		"pm":        8,
		"designer":  7,
		"devops":    7,
		"fullstack": 6,
		"mobile":    6,
		"qa":        6,
	}
}

// New builds a Synthesizer.
func New(optFns ...func(o *Options)) *Synthesizer {
	opts := Options{
		Hierarchy: DefaultHierarchy(),
		LeadID:    "cto",
		Logger:    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Synthesizer{hierarchy: opts.Hierarchy, leadID: opts.LeadID, logger: opts.Logger}
}

// SynthesizeAnalysisPhase merges the analysis contributions of a round into
// one contribution summarizing insights, consensus and complementary
// perspectives.
func (s *Synthesizer) SynthesizeAnalysisPhase(contributions []core.Contribution, contextText string) (core.Contribution, error) {
	if len(contributions) == 0 {
		return core.Contribution{}, fmt.Errorf("analysis synthesis requires at least one contribution")
	}
	ordered := sortedByParticipant(contributions)

	var b strings.Builder
	b.WriteString("**Analysis Synthesis**\n\n")
	fmt.Fprintf(&b, "Context: %s\n\n", participant.Excerpt(contextText, 140))
	b.WriteString("**Key insights:**\n")
	for _, c := range ordered {
		fmt.Fprintf(&b, "- %s: %s\n", c.ParticipantName, keyInsight(c))
	}
	b.WriteString("\n**Consensus:**\n")
	fmt.Fprintf(&b, "- All %d perspectives treat the request as solvable within the stated constraints.\n", len(ordered))
	b.WriteString("- Quality, user value and operability recur as shared success conditions.\n")
	b.WriteString("\n**Complementary perspectives:**\n")
	for _, c := range ordered {
		fmt.Fprintf(&b, "- The %s lens contributes its specialty emphasis without contradicting the others.\n", roleOf(c))
	}
	b.WriteString("\n**Integrated recommendation:** proceed to pairwise collaboration on the highest-priority pairings identified above.")

	return core.NewContribution(
		AnalysisSynthesisID,
		"Analysis Synthesis",
		core.PhaseSolutionProposal,
		b.String(),
		analysisSynthesisConfidence,
		participantIDs(ordered)...,
	), nil
}

// SynthesizeCollaborationPhase merges the collaboration contributions of a
// round into one contribution summarizing the key exchanges and resulting
// decisions.
func (s *Synthesizer) SynthesizeCollaborationPhase(contributions []core.Contribution, contextText string) (core.Contribution, error) {
	if len(contributions) == 0 {
		return core.Contribution{}, fmt.Errorf("collaboration synthesis requires at least one contribution")
	}
	ordered := sortedByParticipant(contributions)

	var b strings.Builder
	b.WriteString("**Collaboration Synthesis**\n\n")
	b.WriteString("**Key exchanges:**\n")
	for _, c := range ordered {
		if len(c.DependsOn) > 0 {
			fmt.Fprintf(&b, "- %s with %s\n", c.ParticipantName, strings.Join(c.DependsOn, ", "))
		} else {
			fmt.Fprintf(&b, "- %s (group)\n", c.ParticipantName)
		}
	}
	b.WriteString("\n**Decisions:**\n")
	b.WriteString("- The pairings above settled their interface and hand-off questions bilaterally.\n")
	b.WriteString("- Remaining open points are carried into the integrated solution as explicit next steps.\n")
	b.WriteString("\n**Coordinated next steps:** fold the agreed positions into a single integrated proposal.")

	return core.NewContribution(
		CollaborationSynthesisID,
		"Collaboration Synthesis",
		core.PhaseSolutionProposal,
		b.String(),
		collaborationSynthesisConfidence,
		participantIDs(ordered)...,
	), nil
}

// CompleteSynthesis performs the full synthesis of a run: strategy
// selection, the structured solution fields, and the aggregate confidence.
func (s *Synthesizer) CompleteSynthesis(contributions []core.Contribution, request string) (core.SynthesisResult, error) {
	if len(contributions) == 0 {
		return core.SynthesisResult{}, fmt.Errorf("complete synthesis requires at least one contribution")
	}

	strategy := s.selectStrategy(contributions)
	result := core.SynthesisResult{
		Strategy:              strategy,
		MainSolution:          s.mainSolution(contributions, strategy),
		AlternativeApproaches: alternativeApproaches(contributions),
		ImplementationPlan:    implementationPlan(),
		RiskAssessment:        riskAssessment(),
		SuccessMetrics:        successMetrics(),
		NextSteps:             s.nextSteps(contributions),
		Confidence:            s.confidence(contributions),
	}
	s.logger.Debug("complete synthesis produced", "strategy", string(strategy), "confidence", result.Confidence)
	return result, nil
}

// CreateFinalResponse performs the complete synthesis and formats it into
// the final textual report returned to the caller.
func (s *Synthesizer) CreateFinalResponse(contributions []core.Contribution, request string) (string, error) {
	result, err := s.CompleteSynthesis(contributions, request)
	if err != nil {
		return "", err
	}
	return formatFinalResponse(result, request), nil
}

// selectStrategy picks how contributions are weighed: complementary for one
// or two voices, hierarchical when the designated lead contributed,
// collaborative otherwise.
func (s *Synthesizer) selectStrategy(contributions []core.Contribution) core.Strategy {
	distinct := make(map[string]bool, len(contributions))
	leadPresent := false
	for _, c := range contributions {
		distinct[c.ParticipantID] = true
		if c.ParticipantID == s.leadID {
			leadPresent = true
		}
	}
	switch {
	case len(distinct) <= 2:
		return core.StrategyComplementary
	case leadPresent:
		return core.StrategyHierarchical
	default:
		return core.StrategyCollaborative
	}
}

// confidence is the mean of all contribution confidences plus a bounded
// diversity bonus for distinct contributing participants, capped below
// certainty.
func (s *Synthesizer) confidence(contributions []core.Contribution) float64 {
	sum := 0.0
	distinct := make(map[string]bool, len(contributions))
	for _, c := range contributions {
		sum += c.Confidence
		distinct[c.ParticipantID] = true
	}
	avg := sum / float64(len(contributions))

	bonus := float64(len(distinct)) * diversityBonusPerParticipant
	if bonus > maxDiversityBonus {
		bonus = maxDiversityBonus
	}

	confidence := avg + bonus
	if confidence > maxConfidence {
		confidence = maxConfidence
	}
	return core.ClampConfidence(confidence)
}

func (s *Synthesizer) mainSolution(contributions []core.Contribution, strategy core.Strategy) string {
	var b strings.Builder
	switch strategy {
	case core.StrategyHierarchical:
		b.WriteString("The team recommends a strategically led approach, weighing the lead perspective highest:\n\n")
	case core.StrategyComplementary:
		b.WriteString("The contributing perspectives are merged side by side into one proposal:\n\n")
	default:
		b.WriteString("The team recommends a jointly owned approach, weighing all perspectives equally:\n\n")
	}

	for i, c := range s.weightedOrder(contributions) {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, c.ParticipantName, keyInsight(c))
	}
	b.WriteString("\nThe proposal integrates the specialties above into one coherent solution validated across the team.")
	return b.String()
}

// weightedOrder returns one representative contribution per participant,
// ordered by hierarchy weight descending (ties by participant id).
func (s *Synthesizer) weightedOrder(contributions []core.Contribution) []core.Contribution {
	firstByID := make(map[string]core.Contribution)
	for _, c := range contributions {
		if _, ok := firstByID[c.ParticipantID]; !ok {
			firstByID[c.ParticipantID] = c
		}
	}
	out := make([]core.Contribution, 0, len(firstByID))
	for _, c := range firstByID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		wi, wj := s.hierarchy[out[i].ParticipantID], s.hierarchy[out[j].ParticipantID]
		if wi != wj {
			return wi > wj
		}
		return out[i].ParticipantID < out[j].ParticipantID
	})
	return out
}

// nextSteps derives coordination steps from who actually contributed.
func (s *Synthesizer) nextSteps(contributions []core.Contribution) []string {
	stepsByID := map[string]string{
		"cto":       "Review the overall direction with the Chief Technology Officer",
		"architect": "Consolidate the architectural decisions with the Software Architect",
		"designer":  "Validate the experience requirements with the UX/UI Designer",
		"qa":        "Define the release quality gates with the QA Automation Engineer",
		"devops":    "Plan the delivery pipeline and environments with the DevOps Engineer",
		"pm":        "Align the milestone plan with the Agile Project Manager",
		"fullstack": "Break the implementation into shippable increments with the Full Stack Engineer",
		"mobile":    "Settle the mobile platform and sync approach with the Mobile Engineer",
	}
	seen := make(map[string]bool)
	var ids []string
	for _, c := range contributions {
		if !seen[c.ParticipantID] {
			seen[c.ParticipantID] = true
			ids = append(ids, c.ParticipantID)
		}
	}
	sort.Strings(ids)

	var steps []string
	for _, id := range ids {
		if step, ok := stepsByID[id]; ok {
			steps = append(steps, step)
		}
	}
	steps = append(steps, "Schedule the kick-off for the first implementation increment")
	return steps
}

func alternativeApproaches(contributions []core.Contribution) []string {
	alts := []string{
		"Phased delivery starting from a minimal viable slice",
		"Service decomposition for independent scaling",
	}
	joined := strings.ToLower(joinContents(contributions))
	if strings.Contains(joined, "mobile") {
		alts = append(alts, "Mobile-first delivery with the web surface following")
	}
	if strings.Contains(joined, "cloud") || strings.Contains(joined, "infrastructure") {
		alts = append(alts, "Managed/serverless infrastructure to reduce operational load")
	}
	return alts
}

func implementationPlan() string {
	return strings.TrimSpace(`
**Phase 1 — Foundation (2-3 sprints)**
- Baseline architecture, environments and delivery pipeline
- Design system and component contracts

**Phase 2 — Core features (4-6 sprints)**
- Vertical feature increments shipped end to end
- Automated test coverage growing with the code

**Phase 3 — Integration and hardening (2-3 sprints)**
- Cross-component integration, performance and security passes

**Phase 4 — Launch and operation (1-2 sprints)**
- Production rollout, monitoring, and post-launch support`)
}

func riskAssessment() string {
	return strings.TrimSpace(`
**Technical risks:** integration complexity, performance at scale, and the handling of sensitive data.
**Delivery risks:** schedule pressure, specialist availability, and requirement drift.
**Mitigations:** early prototyping of the riskiest seams, continuous performance and security verification, and a fixed feedback cadence with stakeholders.`)
}

func successMetrics() []string {
	return []string{
		"Performance: p95 response time under 200ms",
		"Availability: uptime above 99.9%",
		"Quality: error rate below 0.1%",
		"Usability: task completion without assistance for the core journey",
		"Security: zero known critical vulnerabilities at launch",
		"Scalability: headroom for 10x the initial load",
	}
}

// keyInsight extracts the first substantive line of a contribution, used
// when quoting a participant inside a synthesis.
func keyInsight(c core.Contribution) string {
	for _, line := range strings.Split(c.Content, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, "**", ""))
		if line == "" {
			continue
		}
		// Skip the heading line echoing the participant's own name.
		if strings.Contains(line, c.ParticipantName) {
			continue
		}
		return participant.Excerpt(line, 160)
	}
	return participant.Excerpt(c.Content, 160)
}

func roleOf(c core.Contribution) string {
	if c.ParticipantName != "" {
		return c.ParticipantName
	}
	return c.ParticipantID
}

func participantIDs(contributions []core.Contribution) []string {
	seen := make(map[string]bool, len(contributions))
	var ids []string
	for _, c := range contributions {
		if !seen[c.ParticipantID] {
			seen[c.ParticipantID] = true
			ids = append(ids, c.ParticipantID)
		}
	}
	return ids
}

func sortedByParticipant(contributions []core.Contribution) []core.Contribution {
	out := make([]core.Contribution, len(contributions))
	copy(out, contributions)
	sort.Slice(out, func(i, j int) bool {
		if out[i].ParticipantID != out[j].ParticipantID {
			return out[i].ParticipantID < out[j].ParticipantID
		}
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

func joinContents(contributions []core.Contribution) string {
	var b strings.Builder
	for _, c := range contributions {
		b.WriteString(c.Content)
		b.WriteByte(' ')
	}
	return b.String()
}

func formatFinalResponse(result core.SynthesisResult, request string) string {
	var b strings.Builder
	b.WriteString("# Team Response\n\n")
	b.WriteString("## Context\n")
	b.WriteString(strings.TrimSpace(request))
	b.WriteString("\n\n## Recommended Solution\n")
	b.WriteString(result.MainSolution)
	b.WriteString("\n\n## Implementation Plan\n")
	b.WriteString(result.ImplementationPlan)
	b.WriteString("\n\n## Risk Assessment\n")
	b.WriteString(result.RiskAssessment)
	b.WriteString("\n\n## Success Metrics\n")
	for _, m := range result.SuccessMetrics {
		fmt.Fprintf(&b, "- %s\n", m)
	}
	b.WriteString("\n## Next Steps\n")
	for i, step := range result.NextSteps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	b.WriteString("\n## Alternative Approaches\n")
	for _, alt := range result.AlternativeApproaches {
		fmt.Fprintf(&b, "- %s\n", alt)
	}
	b.WriteString("\n---\n\n")
	fmt.Fprintf(&b, "**Team confidence:** %.1f%%\n\n", result.Confidence*100)
	fmt.Fprintf(&b, "**Synthesis strategy:** %s\n", result.Strategy)
	return b.String()
}
