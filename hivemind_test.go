package hivemind

import (
	"context"
	"testing"
	"time"

	"github.com/cwbhub/hivemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHiveMind_EndToEnd(t *testing.T) {
	hive, err := New()
	require.NoError(t, err)
	defer hive.Shutdown()

	assert.Len(t, hive.Team(), 8)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := hive.ProcessRequest(ctx,
		"Create a mobile app with offline support and a great user experience")
	require.NoError(t, err)
	assert.Contains(t, result.Response, "# Team Response")

	status, err := hive.SessionStatus(result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, core.PhaseCommunication, status.Phase)
	assert.True(t, status.HasFinalSolution)
	// the mobile specialist is consulted for a mobile request
	assert.Contains(t, status.Participants, "mobile")

	sessions := hive.ListActiveSessions()
	require.Contains(t, sessions, result.SessionID)
	assert.True(t, sessions[result.SessionID].HasFinalSolution)

	stats := hive.Stats()
	assert.Equal(t, 1, stats.ActiveSessions)
	assert.Equal(t, 8, stats.Participants)

	refined, err := hive.IterateSolution(ctx, result.SessionID,
		"Keep the first release to inspection reports only")
	require.NoError(t, err)
	assert.Equal(t, result.SessionID, refined.SessionID)
	assert.NotEqual(t, result.Response, refined.Response)

	status, err = hive.SessionStatus(result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 1, status.Iterations)
}

func TestHiveMind_RepeatedRequestIsIdempotent(t *testing.T) {
	hive, err := New()
	require.NoError(t, err)
	defer hive.Shutdown()

	ctx := context.Background()
	first, err := hive.ProcessRequest(ctx, "design a billing service")
	require.NoError(t, err)
	second, err := hive.ProcessRequest(ctx, "design a billing service")
	require.NoError(t, err)

	assert.True(t, second.FromCache)
	assert.Equal(t, first.Response, second.Response)
}

func TestHiveMind_RejectsEmptyTeam(t *testing.T) {
	_, err := New(func(o *Options) {
		o.Participants = nil
	})
	assert.ErrorIs(t, err, core.ErrNoParticipants)
}
