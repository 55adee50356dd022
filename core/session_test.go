package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_AppendAndPhaseFiltering(t *testing.T) {
	sess := NewSession("s1", "build something")
	assert.Equal(t, PhaseAnalysis, sess.Phase())

	sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "a1", 0.8))
	sess.AppendContribution(NewContribution("qa", "QA", PhaseAnalysis, "a2", 0.8))
	sess.SetPhase(PhaseCollaboration)
	sess.AppendContribution(NewContribution("cto", "CTO", PhaseCollaboration, "c1", 0.85, "qa"))

	all := sess.Contributions()
	require.Len(t, all, 3)
	assert.Equal(t, "a1", all[0].Content)
	assert.Equal(t, "c1", all[2].Content)

	analysis := sess.ContributionsInPhase(PhaseAnalysis)
	assert.Len(t, analysis, 2)
	collab := sess.ContributionsInPhase(PhaseCollaboration)
	require.Len(t, collab, 1)
	assert.Equal(t, []string{"qa"}, collab[0].DependsOn)
}

func TestSession_ContributionsReturnsCopy(t *testing.T) {
	sess := NewSession("s1", "r")
	sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "original", 0.8))

	got := sess.Contributions()
	got[0].Content = "mutated"

	assert.Equal(t, "original", sess.Contributions()[0].Content)
}

func TestSession_ResetRunClearsPerRunState(t *testing.T) {
	sess := NewSession("s1", "first request")
	sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "a", 0.8))
	sess.SetPhase(PhaseCommunication)
	sess.SetFinalSolution("solution v1")
	sess.MarkFailed()

	sess.ResetRun("first request\n\nIteration feedback: smaller scope")

	assert.Equal(t, 1, sess.Iterations())
	assert.Equal(t, PhaseAnalysis, sess.Phase())
	assert.Empty(t, sess.Contributions())
	assert.False(t, sess.Failed())
	// previous solution survives until the new run overwrites it
	prev, ok := sess.FinalSolution()
	assert.True(t, ok)
	assert.Equal(t, "solution v1", prev)
}

func TestSession_SnapshotReflectsState(t *testing.T) {
	sess := NewSession("s1", "r")
	sess.ResetRun("r\n\nIteration feedback: one")
	sess.ResetRun("r\n\nIteration feedback: two")
	sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "a", 0.8))
	sess.AppendContribution(NewContribution("qa", "QA", PhaseAnalysis, "b", 0.8))
	sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "c", 0.8))

	status := sess.Snapshot()
	assert.Equal(t, "s1", status.SessionID)
	assert.Equal(t, 2, status.Iterations)
	assert.Equal(t, 3, status.ContributionCount)
	assert.Equal(t, []string{"cto", "qa"}, status.Participants)
	assert.False(t, status.HasFinalSolution)
	assert.False(t, status.Failed)
}

func TestSession_ConcurrentAppends(t *testing.T) {
	sess := NewSession("s1", "r")
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sess.AppendContribution(NewContribution("cto", "CTO", PhaseAnalysis, "x", 0.8))
		}()
	}
	wg.Wait()
	assert.Len(t, sess.Contributions(), 32)
}

func TestSession_ConcurrentResetAndSnapshot(t *testing.T) {
	sess := NewSession("s1", "r")
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sess.ResetRun("r\n\nIteration feedback: again")
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			sess.Snapshot()
		}
	}()
	wg.Wait()
	assert.Equal(t, 100, sess.Iterations())
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, ClampConfidence(-0.5))
	assert.Equal(t, 0.3, ClampConfidence(0.3))
	assert.Equal(t, 1.0, ClampConfidence(1.7))
}

func TestFingerprint_StableAndDistinct(t *testing.T) {
	a := Fingerprint("build an app")
	b := Fingerprint("build an app")
	c := Fingerprint("build an app ")
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
}
