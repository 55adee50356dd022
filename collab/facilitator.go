package collab

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/logging"
	"github.com/cwbhub/hivemind/participant"
)

// GroupDiscussionID is the synthetic participant id used for group
// discussion contributions.
const GroupDiscussionID = "group_discussion"

// groupConfidenceMargin lifts the group contribution above the simple
// average of the individual confidences, reflecting higher trust in
// cross-checked consensus.
const groupConfidenceMargin = 0.05

// theme is a lexical signal the facilitator looks for when comparing
// contributions. Themes mentioned by most participants become convergence
// points; themes only one participant emphasizes become divergence points.
type theme struct {
	label    string
	keywords []string
}

var discussionThemes = []theme{
	{label: "Scalable architecture", keywords: []string{"scalab", "architecture", "growth"}},
	{label: "User experience", keywords: []string{"user", "experience", "usability", "journey"}},
	{label: "Quality and testing", keywords: []string{"quality", "test", "coverage", "regression"}},
	{label: "Security posture", keywords: []string{"security", "trust", "secrets"}},
	{label: "Delivery planning", keywords: []string{"plan", "sprint", "milestone", "timeline", "scope"}},
	{label: "Operability and monitoring", keywords: []string{"monitor", "deploy", "pipeline", "operab", "runbook"}},
	{label: "Technology selection", keywords: []string{"framework", "stack", "technology", "platform"}},
	{label: "Offline and sync behavior", keywords: []string{"offline", "sync", "network"}},
}

// Facilitator produces one synthetic contribution summarizing the group
// discussion when more than two participants contributed in a round.
type Facilitator struct {
	logger logging.Logger
}

// NewFacilitator builds a Facilitator.
func NewFacilitator(logger logging.Logger) *Facilitator {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}
	return &Facilitator{logger: logger}
}

// GroupDiscussion summarizes convergence and divergence across the round's
// contributions. It returns false when two or fewer contributions exist,
// since a pairwise exchange needs no facilitation.
func (f *Facilitator) GroupDiscussion(contributions []core.Contribution, contextText string) (core.Contribution, bool) {
	if len(contributions) <= 2 {
		return core.Contribution{}, false
	}

	convergence, divergence := f.classifyThemes(contributions)

	var b strings.Builder
	b.WriteString("**Group Discussion**\n\n")
	fmt.Fprintf(&b, "Context: %s\n\n", participant.Excerpt(contextText, 140))
	b.WriteString("**Convergence points:**\n")
	b.WriteString(bulletList(convergence))
	b.WriteString("\n**Divergence points:**\n")
	b.WriteString(bulletList(divergence))
	b.WriteString("\n**Synthesis:**\n")
	fmt.Fprintf(&b,
		"The group aligns on %d shared principle(s) while %d point(s) reflect individual specialty emphasis. "+
			"The divergences are complementary rather than conflicting: each stems from a different professional lens, "+
			"and together they broaden the solution space the final recommendation draws from.\n",
		len(convergence), len(divergence))

	deps := make([]string, 0, len(contributions))
	seen := make(map[string]bool, len(contributions))
	sum := 0.0
	for _, c := range contributions {
		sum += c.Confidence
		if !seen[c.ParticipantID] {
			seen[c.ParticipantID] = true
			deps = append(deps, c.ParticipantID)
		}
	}
	avg := sum / float64(len(contributions))
	confidence := core.ClampConfidence(avg + groupConfidenceMargin)

	f.logger.Debug("group discussion facilitated",
		"participants", len(deps),
		"convergence", len(convergence),
		"divergence", len(divergence),
	)

	return core.NewContribution(
		GroupDiscussionID,
		"Group Discussion",
		core.PhaseCollaboration,
		strings.TrimSpace(b.String()),
		confidence,
		deps...,
	), true
}

// classifyThemes partitions the known themes by how many distinct
// participants touch them: a majority means convergence, a single voice
// means divergence. Themes nobody mentions are ignored.
func (f *Facilitator) classifyThemes(contributions []core.Contribution) (convergence, divergence []string) {
	perParticipant := make(map[string]string)
	for _, c := range contributions {
		perParticipant[c.ParticipantID] += " " + strings.ToLower(c.Content)
	}
	total := len(perParticipant)

	counts := make(map[string]int, len(discussionThemes))
	for _, th := range discussionThemes {
		for _, text := range perParticipant {
			for _, kw := range th.keywords {
				if strings.Contains(text, kw) {
					counts[th.label]++
					break
				}
			}
		}
	}

	for _, th := range discussionThemes {
		n := counts[th.label]
		switch {
		case n > total/2 && n > 1:
			convergence = append(convergence, th.label)
		case n == 1:
			divergence = append(divergence, th.label)
		}
	}
	sort.Strings(convergence)
	sort.Strings(divergence)

	if len(convergence) == 0 {
		convergence = []string{"Shared commitment to a robust, well-founded solution"}
	}
	if len(divergence) == 0 {
		divergence = []string{"Prioritization of the individual specialty concerns"}
	}
	return convergence, divergence
}

func bulletList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
