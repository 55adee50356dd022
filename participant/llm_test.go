package participant

import (
	"context"
	"testing"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLM_AnalyzeUsesCompleter(t *testing.T) {
	completer := model.NewMockCompleter("mock")
	p := NewLLM(core.Profile{
		ID: "cto", Name: "Elena Marsh", Role: "Chief Technology Officer",
		Specialties: []string{"strategy"},
	}, completer)

	out, err := p.Analyze(context.Background(), "evaluate the platform direction")
	require.NoError(t, err)
	assert.Contains(t, out, "evaluate the platform direction")
	assert.Equal(t, "cto", p.Profile().ID)
}

func TestLLM_CollaborateMentionsPeer(t *testing.T) {
	completer := model.NewMockCompleter("mock")
	p := NewLLM(core.Profile{ID: "qa", Name: "Lucas Bennett", Role: "QA Engineer"}, completer)

	out, err := p.Collaborate(context.Background(), "architect", "Collaboration regarding: test strategy")
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLLM_PropagatesContextError(t *testing.T) {
	completer := model.NewMockCompleter("mock")
	p := NewLLM(core.Profile{ID: "qa", Name: "Lucas Bennett", Role: "QA Engineer"}, completer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Analyze(ctx, "anything")
	assert.Error(t, err)
}
