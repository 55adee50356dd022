package participant

import (
	"fmt"

	"github.com/cwbhub/hivemind/core"
)

// Registry holds the available participants keyed by id. It is populated
// once at construction and read-only afterwards, so it is safe for
// unsynchronized concurrent reads.
type Registry struct {
	byID  map[string]core.Participant
	order []string
}

// NewRegistry builds a registry from the given participants. Registration
// order is preserved by IDs and Profiles. It fails when no participant is
// supplied or when two participants share an id.
func NewRegistry(participants ...core.Participant) (*Registry, error) {
	if len(participants) == 0 {
		return nil, core.ErrNoParticipants
	}
	r := &Registry{byID: make(map[string]core.Participant, len(participants))}
	for _, p := range participants {
		id := p.Profile().ID
		if id == "" {
			return nil, fmt.Errorf("participant with empty id (name %q)", p.Profile().Name)
		}
		if _, exists := r.byID[id]; exists {
			return nil, fmt.Errorf("duplicate participant id %q", id)
		}
		r.byID[id] = p
		r.order = append(r.order, id)
	}
	return r, nil
}

// Get returns the participant with the given id and whether it exists.
func (r *Registry) Get(id string) (core.Participant, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// IDs returns participant ids in registration order.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Profiles returns all participant profiles in registration order.
func (r *Registry) Profiles() []core.Profile {
	out := make([]core.Profile, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Profile())
	}
	return out
}

// Len returns the number of registered participants.
func (r *Registry) Len() int { return len(r.order) }
