// Package router decides which participants are relevant to a request. The
// default implementation is a deterministic keyword classifier over
// requirement types and per-participant expertise tables; a custom Selector
// can replace it without touching the rest of the engine.
package router

import (
	"sort"
	"strings"

	"github.com/cwbhub/hivemind/logging"
)

// Selector chooses the participants relevant to a request. Implementations
// must be deterministic for identical input and must never return an empty
// set: when nothing matches, a default minimal subset is returned instead so
// callers never special-case "no participants".
type Selector interface {
	SelectParticipants(request string, available []string) []string
}

// RequirementType classifies what kind of work a request asks for.
type RequirementType string

// Requirement type values used by the keyword classifier.
const (
	TypeStrategic         RequirementType = "strategic"
	TypeArchitectural     RequirementType = "architectural"
	TypeDevelopment       RequirementType = "development"
	TypeDesign            RequirementType = "design"
	TypeQuality           RequirementType = "quality"
	TypeInfrastructure    RequirementType = "infrastructure"
	TypeProjectManagement RequirementType = "project_management"
	TypeMobile            RequirementType = "mobile"
)

// Expertise describes one participant's relation to the requirement types:
// primary types score highest, secondary types lower, and the keyword list
// adds fine-grained signal independent of type classification.
type Expertise struct {
	Primary   []RequirementType `yaml:"primary"`
	Secondary []RequirementType `yaml:"secondary"`
	Keywords  []string          `yaml:"keywords"`
}

// Analysis is the detailed result of classifying one request.
type Analysis struct {
	Types        []RequirementType `json:"types"`
	Complexity   float64           `json:"complexity"` // 0..1
	Effort       string            `json:"effort"`
	Technologies []string          `json:"technologies,omitempty"`
	Priority     int               `json:"priority"` // 1..10
	Participants []string          `json:"participants"`
}

// Scoring constants for the keyword classifier.
const (
	primaryTypeScore   = 10
	secondaryTypeScore = 5
	keywordScore       = 2
	relevanceThreshold = 5
	maxTypes           = 3
	maxParticipants    = 5
)

// KeywordSelector classifies requests against keyword tables and scores
// participants by expertise. It is read-only after construction and safe for
// concurrent use.
type KeywordSelector struct {
	typeKeywords map[RequirementType][]string
	expertise    map[string]Expertise
	fallbackID   string
	logger       logging.Logger
}

// Options configures a KeywordSelector.
type Options struct {
	// Expertise maps participant id to expertise. Defaults to the table for
	// the default professional team.
	Expertise map[string]Expertise
	// FallbackID is the participant returned when nothing matches. Defaults
	// to the strategic/leadership participant of the default team.
	FallbackID string
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewKeywordSelector builds the default deterministic selector.
func NewKeywordSelector(optFns ...func(o *Options)) *KeywordSelector {
	opts := Options{
		Expertise:  DefaultExpertise(),
		FallbackID: DefaultFallbackID,
		Logger:     logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &KeywordSelector{
		typeKeywords: defaultTypeKeywords(),
		expertise:    opts.Expertise,
		fallbackID:   opts.FallbackID,
		logger:       opts.Logger,
	}
}

// SelectParticipants implements Selector. Participants not present in the
// expertise table are treated as unavailable and silently skipped.
func (s *KeywordSelector) SelectParticipants(request string, available []string) []string {
	return s.Analyze(request, available).Participants
}

// Analyze performs the full request classification: requirement types,
// complexity, effort band, technologies, priority and the ordered relevant
// participant list.
func (s *KeywordSelector) Analyze(request string, available []string) Analysis {
	lower := strings.ToLower(request)

	types := s.classifyTypes(lower)
	complexity := s.complexity(lower)
	a := Analysis{
		Types:        types,
		Complexity:   complexity,
		Effort:       effortBand(complexity, types),
		Technologies: detectTechnologies(lower),
		Priority:     priority(types, complexity),
		Participants: s.rankParticipants(lower, types, available),
	}
	s.logger.Debug("request classified", "types", len(a.Types), "participants", len(a.Participants))
	return a
}

func (s *KeywordSelector) classifyTypes(request string) []RequirementType {
	type scored struct {
		t     RequirementType
		score int
	}
	var hits []scored
	for t, keywords := range s.typeKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(request, kw) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{t, score})
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].t < hits[j].t
	})

	var types []RequirementType
	for _, h := range hits {
		types = append(types, h.t)
		if len(types) == maxTypes {
			break
		}
	}
	// Untyped requests are treated as general development work.
	if len(types) == 0 {
		types = append(types, TypeDevelopment)
	}
	return types
}

// rankParticipants scores every available participant against the detected
// types and its own keyword list, then returns ids above the relevance
// threshold ordered by score (ties broken by id for determinism). The result
// is never empty: when no participant scores, the best scorer or the
// configured fallback is used.
func (s *KeywordSelector) rankParticipants(request string, types []RequirementType, available []string) []string {
	type scored struct {
		id    string
		score int
	}
	var ranked []scored
	for _, id := range available {
		exp, ok := s.expertise[id]
		if !ok {
			continue // unknown participant: skipped, not an error
		}
		score := 0
		for _, t := range types {
			if containsType(exp.Primary, t) {
				score += primaryTypeScore
			} else if containsType(exp.Secondary, t) {
				score += secondaryTypeScore
			}
		}
		for _, kw := range exp.Keywords {
			if strings.Contains(request, kw) {
				score += keywordScore
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{id, score})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].id < ranked[j].id
	})

	var ids []string
	for _, r := range ranked {
		if r.score >= relevanceThreshold {
			ids = append(ids, r.id)
		}
		if len(ids) == maxParticipants {
			break
		}
	}
	if len(ids) == 0 && len(ranked) > 0 {
		ids = append(ids, ranked[0].id)
	}
	if len(ids) == 0 {
		ids = append(ids, s.fallback(available))
	}
	return ids
}

// fallback returns the configured fallback when it is available, otherwise
// the first available id, otherwise the configured fallback id itself so the
// result is still non-empty (the hub skips unknown ids later).
func (s *KeywordSelector) fallback(available []string) string {
	for _, id := range available {
		if id == s.fallbackID {
			return id
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return s.fallbackID
}

func containsType(types []RequirementType, t RequirementType) bool {
	for _, x := range types {
		if x == t {
			return true
		}
	}
	return false
}

func (s *KeywordSelector) complexity(request string) float64 {
	indicators := map[string]float64{
		"simple": -0.2, "easy": -0.2, "basic": -0.1,
		"complex": 0.3, "difficult": 0.3, "advanced": 0.2,
		"integration": 0.2, "multiple": 0.2,
		"scalable": 0.2, "distributed": 0.3, "microservices": 0.3,
		"machine learning": 0.4, "big data": 0.3,
		"real time": 0.3, "real-time": 0.3, "high performance": 0.2,
		"security": 0.2, "compliance": 0.2,
	}
	score := 0.5
	for ind, w := range indicators {
		if strings.Contains(request, ind) {
			score += w
		}
	}
	words := len(strings.Fields(request))
	switch {
	case words > 200:
		score += 0.2
	case words > 100:
		score += 0.1
	}
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

func effortBand(complexity float64, types []RequirementType) string {
	multipliers := map[RequirementType]float64{
		TypeStrategic:         1.2,
		TypeArchitectural:     1.3,
		TypeDevelopment:       1.0,
		TypeDesign:            0.8,
		TypeQuality:           0.9,
		TypeInfrastructure:    1.1,
		TypeProjectManagement: 0.7,
		TypeMobile:            1.1,
	}
	sum := 0.0
	for _, t := range types {
		m, ok := multipliers[t]
		if !ok {
			m = 1.0
		}
		sum += m
	}
	adjusted := complexity * sum / float64(len(types))
	switch {
	case adjusted < 0.3:
		return "low (1-2 sprints)"
	case adjusted < 0.6:
		return "medium (2-4 sprints)"
	case adjusted < 0.8:
		return "high (4-8 sprints)"
	default:
		return "very high (8+ sprints)"
	}
}

func priority(types []RequirementType, complexity float64) int {
	base := map[RequirementType]int{
		TypeStrategic:         9,
		TypeQuality:           8,
		TypeArchitectural:     7,
		TypeInfrastructure:    6,
		TypeDevelopment:       5,
		TypeDesign:            5,
		TypeMobile:            5,
		TypeProjectManagement: 4,
	}
	sum := 0
	for _, t := range types {
		p, ok := base[t]
		if !ok {
			p = 5
		}
		sum += p
	}
	avg := sum / len(types)
	// Very complex requests tend to be staged rather than fast-tracked.
	if complexity > 0.8 {
		avg--
	} else if complexity < 0.3 {
		avg++
	}
	if avg < 1 {
		return 1
	}
	if avg > 10 {
		return 10
	}
	return avg
}

func detectTechnologies(request string) []string {
	known := []string{
		"react", "vue", "angular", "javascript", "typescript",
		"node.js", "python", "java", "go", "rust",
		"postgresql", "mysql", "mongodb", "redis",
		"aws", "azure", "gcp", "docker", "kubernetes",
		"graphql", "rest", "grpc",
		"machine learning", "blockchain",
		"ios", "android", "react native", "flutter",
	}
	var found []string
	for _, tech := range known {
		if strings.Contains(request, tech) {
			found = append(found, tech)
		}
		if len(found) == 5 {
			break
		}
	}
	return found
}

func defaultTypeKeywords() map[RequirementType][]string {
	return map[RequirementType][]string{
		TypeStrategic: {
			"strategy", "vision", "roadmap", "innovation", "competitive",
			"market", "business", "roi", "investment", "growth", "opportunity",
		},
		TypeArchitectural: {
			"architecture", "pattern", "structure", "component",
			"microservices", "api", "integration", "performance",
			"database", "system", "module", "interface",
		},
		TypeDevelopment: {
			"development", "code", "implementation", "programming",
			"frontend", "backend", "fullstack", "framework", "library",
			"algorithm", "function", "build",
		},
		TypeDesign: {
			"design", "ux", "ui", "interface", "user", "experience",
			"usability", "wireframe", "prototype", "layout", "visual",
			"navigation", "accessibility", "responsive",
		},
		TypeQuality: {
			"quality", "test", "qa", "bug", "defect", "validation",
			"verification", "automation", "coverage", "reliability",
			"stability", "monitoring",
		},
		TypeInfrastructure: {
			"infrastructure", "devops", "deploy", "ci/cd", "pipeline",
			"server", "cloud", "aws", "azure", "docker", "kubernetes",
			"backup", "network",
		},
		TypeProjectManagement: {
			"project", "management", "planning", "schedule", "resources",
			"team", "sprint", "scrum", "kanban", "agile", "delivery",
			"milestone", "stakeholder", "risk",
		},
		TypeMobile: {
			"mobile", "app", "ios", "android", "smartphone", "tablet",
			"native", "hybrid", "react native", "flutter", "offline",
			"push notification", "gps", "camera",
		},
	}
}
