package testutil

import (
	"time"

	"github.com/cwbhub/hivemind/core"
)

// ContributionBuilder provides a fluent helper for constructing
// contributions in tests. Example:
//
//	c := NewContributionBuilder("cto").Phase(core.PhaseAnalysis).Confidence(0.8).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type ContributionBuilder struct {
	participantID   string
	participantName string
	phase           core.Phase
	content         string
	confidence      float64
	dependsOn       []string
	timestamp       time.Time
}

// NewContributionBuilder creates a builder with defaults: analysis phase,
// confidence 0.8, a placeholder content line, and the participant id reused
// as the display name.
func NewContributionBuilder(participantID string) *ContributionBuilder {
	return &ContributionBuilder{
		participantID:   participantID,
		participantName: participantID,
		phase:           core.PhaseAnalysis,
		content:         "analysis from " + participantID,
		confidence:      0.8,
		timestamp:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// Name overrides the display name (chainable).
func (b *ContributionBuilder) Name(n string) *ContributionBuilder { b.participantName = n; return b }

// Phase sets the phase tag (chainable).
func (b *ContributionBuilder) Phase(p core.Phase) *ContributionBuilder { b.phase = p; return b }

// Content sets the contribution text (chainable).
func (b *ContributionBuilder) Content(c string) *ContributionBuilder { b.content = c; return b }

// Confidence sets the confidence score (chainable).
func (b *ContributionBuilder) Confidence(v float64) *ContributionBuilder { b.confidence = v; return b }

// DependsOn appends dependency participant ids (chainable).
func (b *ContributionBuilder) DependsOn(ids ...string) *ContributionBuilder {
	b.dependsOn = append(b.dependsOn, ids...)
	return b
}

// At overrides the timestamp where ordering matters (chainable).
func (b *ContributionBuilder) At(t time.Time) *ContributionBuilder { b.timestamp = t; return b }

// Build assembles the contribution.
func (b *ContributionBuilder) Build() core.Contribution {
	return core.Contribution{
		ParticipantID:   b.participantID,
		ParticipantName: b.participantName,
		Phase:           b.phase,
		Content:         b.content,
		Confidence:      core.ClampConfidence(b.confidence),
		DependsOn:       b.dependsOn,
		Timestamp:       b.timestamp,
	}
}

// AnalysisRound builds one analysis contribution per id, a common starting
// point for collaboration and synthesis tests.
func AnalysisRound(ids ...string) []core.Contribution {
	out := make([]core.Contribution, 0, len(ids))
	for _, id := range ids {
		out = append(out, NewContributionBuilder(id).Build())
	}
	return out
}
