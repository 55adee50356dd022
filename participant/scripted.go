package participant

import (
	"context"
	"fmt"
	"strings"

	"github.com/cwbhub/hivemind/core"
)

// FocusArea is one analytical angle a scripted persona applies to every
// request, rendered as a numbered section of its analysis.
type FocusArea struct {
	Title   string
	Comment string
}

// Persona is the data-driven definition of a scripted participant. The
// engine depends only on core.Participant; Persona exists so the default
// team can be declared as data instead of one type per professional.
type Persona struct {
	Profile core.Profile

	// Voice is a one-line statement of the persona's perspective prepended
	// to every analysis.
	Voice string

	// Focus lists the analytical angles applied to each request, in order.
	Focus []FocusArea

	// PeerNotes maps a peer participant id to the angle this persona takes
	// when collaborating with that peer. Unknown peers get a generic
	// expertise-sharing note.
	PeerNotes map[string]string
}

// Scripted is a deterministic participant driven entirely by its Persona
// definition. Identical inputs always produce identical outputs, which the
// cache layer and the tests rely on.
type Scripted struct {
	persona Persona
}

var _ core.Participant = (*Scripted)(nil)

// NewScripted wraps a persona definition as a participant.
func NewScripted(p Persona) *Scripted {
	return &Scripted{persona: p}
}

// Profile implements core.Participant.
func (s *Scripted) Profile() core.Profile { return s.persona.Profile }

// Analyze renders the persona's focus areas against the request.
func (s *Scripted) Analyze(ctx context.Context, request string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**%s Analysis — %s**\n\n", s.persona.Profile.Role, s.persona.Profile.Name)
	fmt.Fprintf(&b, "Perspective: %s\n\n", s.persona.Voice)
	fmt.Fprintf(&b, "Request under review: %s\n\n", Excerpt(request, 140))
	for i, f := range s.persona.Focus {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i+1, f.Title, f.Comment)
	}
	fmt.Fprintf(&b, "\nThis assessment reflects the %s perspective and should be weighed against the other specialties involved.", s.persona.Profile.Role)
	return b.String(), nil
}

// Collaborate renders the persona's note for the given peer against the
// shared context.
func (s *Scripted) Collaborate(ctx context.Context, peerID, contextText string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	note, ok := s.persona.PeerNotes[peerID]
	if !ok {
		note = fmt.Sprintf("sharing %s expertise relevant to the joint effort", s.persona.Profile.Role)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Collaboration — %s with %s**\n\n", s.persona.Profile.Name, peerID)
	fmt.Fprintf(&b, "Context: %s\n\n", Excerpt(contextText, 140))
	fmt.Fprintf(&b, "Contribution: as %s, %s.", s.persona.Profile.Role, note)
	return b.String(), nil
}

// Excerpt truncates text to at most max runes, appending an ellipsis when
// something was cut. Used to keep request echoes in contributions short.
func Excerpt(text string, max int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "..."
}
