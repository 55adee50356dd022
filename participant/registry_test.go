package participant

import (
	"context"
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_RejectsEmptyAndDuplicates(t *testing.T) {
	_, err := NewRegistry()
	assert.ErrorIs(t, err, core.ErrNoParticipants)

	_, err = NewRegistry(NewCTO(), NewCTO())
	assert.Error(t, err)
}

func TestRegistry_LookupAndOrder(t *testing.T) {
	reg, err := NewRegistry(DefaultTeam()...)
	require.NoError(t, err)

	assert.Equal(t, 8, reg.Len())
	assert.Equal(t, []string{
		IDCTO, IDArchitect, IDFullstack, IDMobile,
		IDDesigner, IDQA, IDDevOps, IDPM,
	}, reg.IDs())

	p, ok := reg.Get(IDQA)
	require.True(t, ok)
	assert.Equal(t, IDQA, p.Profile().ID)

	_, ok = reg.Get("nobody")
	assert.False(t, ok)
}

func TestDefaultTeam_ProfilesComplete(t *testing.T) {
	for _, p := range DefaultTeam() {
		profile := p.Profile()
		assert.NotEmpty(t, profile.ID)
		assert.NotEmpty(t, profile.Name)
		assert.NotEmpty(t, profile.Role)
		assert.NotEmpty(t, profile.Specialties, "participant %s needs specialties for routing", profile.ID)
	}
}

func TestScripted_AnalyzeDeterministic(t *testing.T) {
	cto := NewCTO()
	ctx := context.Background()

	first, err := cto.Analyze(ctx, "Build a scalable analytics platform")
	require.NoError(t, err)
	second, err := cto.Analyze(ctx, "Build a scalable analytics platform")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, cto.Profile().Name)
	assert.Contains(t, first, "Build a scalable analytics platform")
}

func TestScripted_CollaborateUsesPeerNotes(t *testing.T) {
	architect := NewArchitect()
	out, err := architect.Collaborate(context.Background(), IDFullstack, "Collaboration regarding: api design")
	require.NoError(t, err)
	assert.Contains(t, out, architect.Profile().Name)
	assert.Contains(t, out, IDFullstack)
}

func TestScripted_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewQAEngineer().Analyze(ctx, "anything")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 10))
	long := Excerpt("abcdefghijklmnop", 10)
	assert.Equal(t, "abcdefghij...", long)
}
