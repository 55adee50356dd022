package core

import (
	"sync"
	"time"
)

// Session is the end-to-end processing context for one user request and all
// of its iterations. It holds the append-only contribution log, the current
// phase, and the final solution once a run completes. It is safe for
// concurrent access, although the hub serializes all mutating calls on a
// single session id.
//
// Contract:
//   - Contributions are append-only; AppendContribution never reorders or
//     replaces existing entries within a run.
//   - FinalSolution is set exactly once per run and overwritten (not
//     appended) by each iteration.
//   - Snapshot and Contributions return defensive copies.
type Session struct {
	ID      string
	Request string
	Created time.Time

	mu            sync.RWMutex
	iterations    int
	phase         Phase
	contributions []Contribution
	finalSolution string
	failed        bool
}

// NewSession creates a session for the given request starting in the
// analysis phase.
func NewSession(id, request string) *Session {
	return &Session{
		ID:      id,
		Request: request,
		Created: time.Now().UTC(),
		phase:   PhaseAnalysis,
	}
}

// Phase returns the session's current phase.
func (s *Session) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// SetPhase advances the session to the given phase.
func (s *Session) SetPhase(p Phase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = p
}

// AppendContribution appends one immutable contribution to the session log.
func (s *Session) AppendContribution(c Contribution) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.contributions = append(s.contributions, c)
}

// Contributions returns a copy of the full contribution log.
func (s *Session) Contributions() []Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contribution, len(s.contributions))
	copy(out, s.contributions)
	return out
}

// ContributionsInPhase returns the contributions tagged with the given phase.
// Callers must not rely on ordering across concurrent tasks of one round,
// only on the phase and participant tags.
func (s *Session) ContributionsInPhase(p Phase) []Contribution {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Contribution
	for _, c := range s.contributions {
		if c.Phase == p {
			out = append(out, c)
		}
	}
	return out
}

// ResetRun clears per-run state (contribution log) ahead of an iteration
// re-entering the analysis phase and bumps the iteration counter. The final
// solution of the previous run is kept until the new run overwrites it.
func (s *Session) ResetRun(request string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Request = request
	s.iterations++
	s.contributions = nil
	s.phase = PhaseAnalysis
	s.failed = false
}

// Iterations returns how many feedback iterations have re-run this session.
func (s *Session) Iterations() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.iterations
}

// SetFinalSolution records the outcome of a completed run, overwriting any
// previous iteration's result.
func (s *Session) SetFinalSolution(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalSolution = text
}

// FinalSolution returns the most recent run's result and whether one exists.
func (s *Session) FinalSolution() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalSolution, s.finalSolution != ""
}

// MarkFailed flags the session after a fatal phase or synthesis error.
func (s *Session) MarkFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = true
}

// Failed reports whether the last run aborted with an error.
func (s *Session) Failed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failed
}

// Participants returns the distinct participant ids that contributed so far,
// in first-contribution order.
func (s *Session) Participants() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool, len(s.contributions))
	var ids []string
	for _, c := range s.contributions {
		if !seen[c.ParticipantID] {
			seen[c.ParticipantID] = true
			ids = append(ids, c.ParticipantID)
		}
	}
	return ids
}

// Status is a point-in-time snapshot of a session used by status queries.
type Status struct {
	SessionID         string    `json:"session_id"`
	Phase             Phase     `json:"phase"`
	Iterations        int       `json:"iterations"`
	ContributionCount int       `json:"contribution_count"`
	Participants      []string  `json:"participants"`
	HasFinalSolution  bool      `json:"has_final_solution"`
	Failed            bool      `json:"failed"`
	Created           time.Time `json:"created"`
}

// Snapshot captures the session's current status.
func (s *Session) Snapshot() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]bool, len(s.contributions))
	var ids []string
	for _, c := range s.contributions {
		if !seen[c.ParticipantID] {
			seen[c.ParticipantID] = true
			ids = append(ids, c.ParticipantID)
		}
	}
	return Status{
		SessionID:         s.ID,
		Phase:             s.phase,
		Iterations:        s.iterations,
		ContributionCount: len(s.contributions),
		Participants:      ids,
		HasFinalSolution:  s.finalSolution != "",
		Failed:            s.failed,
		Created:           s.Created,
	}
}

// SessionStore persists sessions keyed by id. Implementations must be safe
// for concurrent access; the hub guarantees that at most one run mutates a
// given session at a time.
type SessionStore interface {
	Create(id, request string) (*Session, error)
	Get(id string) (*Session, error)
	Delete(id string) error
	List() []string
}
