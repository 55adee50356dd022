package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/cwbhub/hivemind/core"
)

// FakeParticipant is a deterministic participant for pipeline tests. It
// counts calls and can be configured to fail or to block until the call's
// context is cancelled.
type FakeParticipant struct {
	ID           string
	Name         string
	Specialties  []string
	AnalyzeErr   error
	CollabErr    error
	BlockAnalyze bool
	BlockCollab  bool
	analyzeCalls atomic.Int64
	collabCalls  atomic.Int64
}

var _ core.Participant = (*FakeParticipant)(nil)

// NewFakeParticipant creates a fake with the id doubling as the name.
func NewFakeParticipant(id string) *FakeParticipant {
	return &FakeParticipant{ID: id, Name: id}
}

// Profile implements core.Participant.
func (f *FakeParticipant) Profile() core.Profile {
	return core.Profile{ID: f.ID, Name: f.Name, Role: "Specialist", Specialties: f.Specialties}
}

// Analyze returns a deterministic line or the configured error.
func (f *FakeParticipant) Analyze(ctx context.Context, request string) (string, error) {
	f.analyzeCalls.Add(1)
	if f.BlockAnalyze {
		<-ctx.Done()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.AnalyzeErr != nil {
		return "", f.AnalyzeErr
	}
	return fmt.Sprintf("analysis of %q by %s", request, f.ID), nil
}

// Collaborate returns a deterministic line or the configured error.
func (f *FakeParticipant) Collaborate(ctx context.Context, peerID, contextText string) (string, error) {
	f.collabCalls.Add(1)
	if f.BlockCollab {
		<-ctx.Done()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.CollabErr != nil {
		return "", f.CollabErr
	}
	return fmt.Sprintf("%s collaborating with %s", f.ID, peerID), nil
}

// AnalyzeCalls returns how many times Analyze ran.
func (f *FakeParticipant) AnalyzeCalls() int { return int(f.analyzeCalls.Load()) }

// CollabCalls returns how many times Collaborate ran.
func (f *FakeParticipant) CollabCalls() int { return int(f.collabCalls.Load()) }

// ErrFake is the default failure injected by failing fakes.
var ErrFake = errors.New("injected failure")
