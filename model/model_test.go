package model

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockCompleter_CannedAndEcho(t *testing.T) {
	m := NewMockCompleter("test-model")
	m.AddResponse("what is the plan", "ship it")

	ctx := context.Background()

	out, err := m.Complete(ctx, Request{Prompt: "what is the plan"})
	require.NoError(t, err)
	assert.Equal(t, "ship it", out)

	out, err = m.Complete(ctx, Request{Prompt: "unseen prompt"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: unseen prompt", out)

	assert.Equal(t, "test-model", m.Info().Name)
}

func TestMockCompleter_HonorsContext(t *testing.T) {
	m := NewMockCompleter("test-model")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Complete(ctx, Request{Prompt: "anything"})
	assert.ErrorIs(t, err, context.Canceled)
}
