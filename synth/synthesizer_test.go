package synth

import (
	"strings"
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynthesizeAnalysisPhase(t *testing.T) {
	s := New()

	round := testutil.AnalysisRound("cto", "architect", "qa")
	contribution, err := s.SynthesizeAnalysisPhase(round, "build the platform")
	require.NoError(t, err)

	assert.Equal(t, AnalysisSynthesisID, contribution.ParticipantID)
	assert.Equal(t, core.PhaseSolutionProposal, contribution.Phase)
	assert.InDelta(t, analysisSynthesisConfidence, contribution.Confidence, 1e-9)
	assert.ElementsMatch(t, []string{"cto", "architect", "qa"}, contribution.DependsOn)
	assert.Contains(t, contribution.Content, "Key insights:")
	assert.Contains(t, contribution.Content, "Consensus:")
}

func TestSynthesizeAnalysisPhase_Empty(t *testing.T) {
	_, err := New().SynthesizeAnalysisPhase(nil, "ctx")
	assert.Error(t, err)
}

func TestSynthesizeCollaborationPhase(t *testing.T) {
	s := New()

	round := []core.Contribution{
		testutil.NewContributionBuilder("architect").
			Phase(core.PhaseCollaboration).DependsOn("fullstack").Confidence(0.85).Build(),
		testutil.NewContributionBuilder("qa").
			Phase(core.PhaseCollaboration).DependsOn("mobile").Confidence(0.85).Build(),
	}
	contribution, err := s.SynthesizeCollaborationPhase(round, "ctx")
	require.NoError(t, err)

	assert.Equal(t, CollaborationSynthesisID, contribution.ParticipantID)
	assert.InDelta(t, collaborationSynthesisConfidence, contribution.Confidence, 1e-9)
	assert.Contains(t, contribution.Content, "architect")
	assert.Contains(t, contribution.Content, "fullstack")
}

func TestSelectStrategy(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		ids  []string
		want core.Strategy
	}{
		{"single voice", []string{"qa"}, core.StrategyComplementary},
		{"two voices", []string{"qa", "architect"}, core.StrategyComplementary},
		{"lead present", []string{"cto", "architect", "qa"}, core.StrategyHierarchical},
		{"no lead", []string{"fullstack", "architect", "qa"}, core.StrategyCollaborative},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.CompleteSynthesis(testutil.AnalysisRound(tt.ids...), "request")
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Strategy)
		})
	}
}

func TestConfidence_MeanPlusBoundedDiversityBonus(t *testing.T) {
	s := New()

	// three distinct participants at 0.8: 0.8 + 3*0.02
	result, err := s.CompleteSynthesis(testutil.AnalysisRound("a", "b", "c"), "r")
	require.NoError(t, err)
	assert.InDelta(t, 0.86, result.Confidence, 1e-9)

	// eight distinct participants: bonus capped at 0.1, total capped at 0.95
	big := testutil.AnalysisRound("a", "b", "c", "d", "e", "f", "g", "h")
	for i := range big {
		big[i].Confidence = 0.9
	}
	result, err = s.CompleteSynthesis(big, "r")
	require.NoError(t, err)
	assert.InDelta(t, maxConfidence, result.Confidence, 1e-9)
}

func TestConfidence_AtLeastMeanOfInputs(t *testing.T) {
	s := New()
	round := testutil.AnalysisRound("a", "b", "c", "d")
	result, err := s.CompleteSynthesis(round, "r")
	require.NoError(t, err)

	sum := 0.0
	for _, c := range round {
		sum += c.Confidence
	}
	assert.GreaterOrEqual(t, result.Confidence, sum/float64(len(round)))
}

func TestCompleteSynthesis_HierarchicalOrdering(t *testing.T) {
	s := New()

	round := testutil.AnalysisRound("qa", "cto", "architect")
	result, err := s.CompleteSynthesis(round, "r")
	require.NoError(t, err)

	// lead perspective is listed first in the weighted solution
	ctoIdx := strings.Index(result.MainSolution, "cto")
	qaIdx := strings.Index(result.MainSolution, "qa")
	require.GreaterOrEqual(t, ctoIdx, 0)
	require.GreaterOrEqual(t, qaIdx, 0)
	assert.Less(t, ctoIdx, qaIdx)
}

func TestCreateFinalResponse_Sections(t *testing.T) {
	s := New()

	response, err := s.CreateFinalResponse(testutil.AnalysisRound("cto", "architect", "qa"), "build a platform")
	require.NoError(t, err)

	for _, section := range []string{
		"# Team Response",
		"## Context",
		"## Recommended Solution",
		"## Implementation Plan",
		"## Risk Assessment",
		"## Success Metrics",
		"## Next Steps",
		"## Alternative Approaches",
		"Team confidence:",
		"Synthesis strategy:",
	} {
		assert.Contains(t, response, section)
	}
	assert.Contains(t, response, "build a platform")
}

func TestCreateFinalResponse_Empty(t *testing.T) {
	_, err := New().CreateFinalResponse(nil, "r")
	assert.Error(t, err)
}
