package collab

import (
	"context"
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/internal/testutil"
	"github.com/cwbhub/hivemind/participant"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullTeamRouter(t *testing.T) *Router {
	t.Helper()
	reg, err := participant.NewRegistry(participant.DefaultTeam()...)
	require.NoError(t, err)
	return NewRouter(reg)
}

func TestOpportunities_PriorityOrderAndTypes(t *testing.T) {
	r := fullTeamRouter(t)

	contributions := testutil.AnalysisRound("cto", "architect", "fullstack")
	opportunities := r.Opportunities(contributions)

	require.NotEmpty(t, opportunities)
	assert.Equal(t, "cto", opportunities[0].RequesterID)
	assert.Equal(t, "architect", opportunities[0].CollaboratorID)
	assert.Equal(t, core.CollabDecisionMaking, opportunities[0].Type)
	assert.Equal(t, 10, opportunities[0].Priority)

	for i := 1; i < len(opportunities); i++ {
		assert.GreaterOrEqual(t, opportunities[i-1].Priority, opportunities[i].Priority)
	}
}

func TestOpportunities_OnlyAmongResponders(t *testing.T) {
	r := fullTeamRouter(t)

	opportunities := r.Opportunities(testutil.AnalysisRound("mobile", "designer"))
	require.NotEmpty(t, opportunities)
	for _, opp := range opportunities {
		assert.Contains(t, []string{"mobile", "designer"}, opp.RequesterID)
		assert.Contains(t, []string{"mobile", "designer"}, opp.CollaboratorID)
		assert.Equal(t, core.CollabProblemSolving, opp.Type)
	}
}

func TestOpportunities_CappedPerRound(t *testing.T) {
	r := fullTeamRouter(t)

	all := testutil.AnalysisRound("cto", "architect", "fullstack", "mobile", "designer", "qa", "devops", "pm")
	opportunities := r.Opportunities(all)

	assert.Len(t, opportunities, DefaultMaxPerRound)
}

func TestOpportunities_DeterministicForIdenticalRound(t *testing.T) {
	r := fullTeamRouter(t)
	round := testutil.AnalysisRound("cto", "architect", "qa", "devops")

	first := r.Opportunities(round)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Opportunities(round))
	}
}

func TestExecute_FailureIsolation(t *testing.T) {
	failing := testutil.NewFakeParticipant("a")
	failing.CollabErr = testutil.ErrFake
	healthy := testutil.NewFakeParticipant("b")

	reg, err := participant.NewRegistry(failing, healthy)
	require.NoError(t, err)

	r := NewRouter(reg, func(o *RouterOptions) {
		o.Graph = NewGraph(GraphConfig{
			Affinity: map[string][]string{"a": {"b"}, "b": {"a"}},
		})
	})

	opportunities := r.Opportunities(testutil.AnalysisRound("a", "b"))
	require.Len(t, opportunities, 2)

	applied := r.Execute(context.Background(), opportunities, "request under discussion")
	require.Len(t, applied, 1)
	assert.Equal(t, "b", applied[0].ParticipantID)
	assert.Equal(t, core.PhaseCollaboration, applied[0].Phase)
	assert.Equal(t, []string{"a"}, applied[0].DependsOn)
	assert.InDelta(t, collaborationConfidence, applied[0].Confidence, 1e-9)

	// only the successful exchange is recorded
	assert.Equal(t, 1, r.Stats().Total)
}

func TestExecute_UnregisteredParticipantDropped(t *testing.T) {
	reg, err := participant.NewRegistry(testutil.NewFakeParticipant("a"))
	require.NoError(t, err)
	r := NewRouter(reg)

	applied := r.Execute(context.Background(), []core.Opportunity{
		{RequesterID: "a", CollaboratorID: "ghost", Type: core.CollabPeerReview, Priority: 5},
	}, "ctx")
	assert.Empty(t, applied)
}

func TestExecute_EmptyRound(t *testing.T) {
	r := fullTeamRouter(t)
	assert.Nil(t, r.Execute(context.Background(), nil, "ctx"))
}

func TestRecorder_RingEviction(t *testing.T) {
	rec := NewRecorder(3)
	for i := 0; i < 5; i++ {
		rec.Record(Record{RequesterID: "a", CollaboratorID: "b", Type: core.CollabPeerReview})
	}
	stats := rec.Stats()
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 3, stats.RetainedWindow)
	// per-participant counters cover the retained window only
	assert.Equal(t, 3, stats.ByParticipant["a"].Requested)
	assert.Equal(t, 3, stats.ByParticipant["b"].Collaborated)
}
