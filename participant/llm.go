package participant

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/model"
)

// LLM is a participant whose analysis and collaboration text comes from a
// model.Completer. The persona is expressed as a system prompt derived from
// the profile. Determinism depends on the backing completer, so LLM
// participants pair best with a disabled or short-TTL response cache.
type LLM struct {
	profile   core.Profile
	completer model.Completer
}

var _ core.Participant = (*LLM)(nil)

// NewLLM builds an LLM-backed participant with the given profile.
func NewLLM(profile core.Profile, completer model.Completer) *LLM {
	return &LLM{profile: profile, completer: completer}
}

// Profile implements core.Participant.
func (l *LLM) Profile() core.Profile { return l.profile }

func (l *LLM) systemPrompt() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a senior %s on a multidisciplinary engineering team.", l.profile.Name, l.profile.Role)
	if len(l.profile.Specialties) > 0 {
		fmt.Fprintf(&b, " Your specialties: %s.", strings.Join(l.profile.Specialties, ", "))
	}
	b.WriteString(" Respond with a focused professional assessment from your specialty's point of view. Be concrete and concise.")
	return b.String()
}

// Analyze implements core.Participant by asking the completer for an
// assessment of the request.
func (l *LLM) Analyze(ctx context.Context, request string) (string, error) {
	text, err := l.completer.Complete(ctx, model.Request{
		System: l.systemPrompt(),
		Prompt: fmt.Sprintf("Analyze the following request from your perspective as %s:\n\n%s", l.profile.Role, request),
	})
	if err != nil {
		return "", fmt.Errorf("participant %s analyze: %w", l.profile.ID, err)
	}
	return text, nil
}

// Collaborate implements core.Participant by asking the completer for this
// participant's side of an exchange with the given peer.
func (l *LLM) Collaborate(ctx context.Context, peerID, contextText string) (string, error) {
	text, err := l.completer.Complete(ctx, model.Request{
		System: l.systemPrompt(),
		Prompt: fmt.Sprintf("You are collaborating with the team member %q. Given this context, state your contribution to the joint work:\n\n%s", peerID, contextText),
	})
	if err != nil {
		return "", fmt.Errorf("participant %s collaborate with %s: %w", l.profile.ID, peerID, err)
	}
	return text, nil
}
