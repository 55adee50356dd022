package collab

import (
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDiscussion_SkipsSmallRounds(t *testing.T) {
	f := NewFacilitator(nil)

	_, ok := f.GroupDiscussion(nil, "ctx")
	assert.False(t, ok)

	_, ok = f.GroupDiscussion(testutil.AnalysisRound("a", "b"), "ctx")
	assert.False(t, ok)
}

func TestGroupDiscussion_SummarizesRound(t *testing.T) {
	f := NewFacilitator(nil)

	contributions := []core.Contribution{
		testutil.NewContributionBuilder("cto").
			Phase(core.PhaseCollaboration).
			Content("we need a scalable architecture with a strong security posture").
			Confidence(0.8).Build(),
		testutil.NewContributionBuilder("architect").
			Phase(core.PhaseCollaboration).
			Content("the architecture must support growth from day one").
			Confidence(0.8).Build(),
		testutil.NewContributionBuilder("qa").
			Phase(core.PhaseCollaboration).
			Content("test coverage and quality gates keep regressions out").
			Confidence(0.8).Build(),
	}

	discussion, ok := f.GroupDiscussion(contributions, "build the platform")
	require.True(t, ok)

	assert.Equal(t, GroupDiscussionID, discussion.ParticipantID)
	assert.Equal(t, core.PhaseCollaboration, discussion.Phase)
	assert.Equal(t, []string{"cto", "architect", "qa"}, discussion.DependsOn)

	// two of three voices touch architecture: convergence; security and
	// quality are single-voice: divergence
	assert.Contains(t, discussion.Content, "Scalable architecture")
	assert.Contains(t, discussion.Content, "Security posture")
	assert.Contains(t, discussion.Content, "Quality and testing")

	// confidence sits above the plain average of the inputs
	assert.InDelta(t, 0.85, discussion.Confidence, 1e-9)
}

func TestGroupDiscussion_ConfidenceClamped(t *testing.T) {
	f := NewFacilitator(nil)

	round := []core.Contribution{
		testutil.NewContributionBuilder("a").Confidence(1.0).Build(),
		testutil.NewContributionBuilder("b").Confidence(1.0).Build(),
		testutil.NewContributionBuilder("c").Confidence(1.0).Build(),
	}
	discussion, ok := f.GroupDiscussion(round, "ctx")
	require.True(t, ok)
	assert.Equal(t, 1.0, discussion.Confidence)
}

func TestGroupDiscussion_FallbackSections(t *testing.T) {
	f := NewFacilitator(nil)

	round := []core.Contribution{
		testutil.NewContributionBuilder("a").Content("x").Build(),
		testutil.NewContributionBuilder("b").Content("y").Build(),
		testutil.NewContributionBuilder("c").Content("z").Build(),
	}
	discussion, ok := f.GroupDiscussion(round, "ctx")
	require.True(t, ok)
	assert.Contains(t, discussion.Content, "Convergence points:")
	assert.Contains(t, discussion.Content, "Divergence points:")
	assert.NotContains(t, discussion.Content, "- \n")
}
