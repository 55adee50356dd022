package core

import "context"

// Profile carries the static identity of a participant: identifier, display
// name, professional role and the specialty areas used by the requirement
// router for relevance scoring.
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Specialties []string `json:"specialties,omitempty"`
}

// Participant is the capability unit representing one professional persona.
//
// How a participant produces its text is opaque to the engine: it may be a
// scripted persona, an LLM-backed one, or a test double. Implementations
// must be safe for concurrent use and must respect context cancellation in
// Analyze and Collaborate since both run inside bounded parallel rounds.
type Participant interface {
	// Analyze examines a request from this participant's perspective and
	// returns its written contribution.
	Analyze(ctx context.Context, request string) (string, error)

	// Collaborate produces this participant's side of a pairwise exchange
	// with the peer identified by peerID, given shared context text.
	Collaborate(ctx context.Context, peerID, contextText string) (string, error)

	// Profile returns the participant's static identity.
	Profile() Profile
}
