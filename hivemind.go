// Package hivemind provides a high-level façade over the hub engine and its
// services (participants, routing, collaboration, synthesis, sessions,
// caching and logging), enabling rapid construction of collaborative
// multi-specialist systems. Most applications interact with this package by:
//  1. Creating a HiveMind via New() (optionally overriding the default team
//     or the in-memory services)
//  2. Processing requests (ProcessRequest) and refining them (IterateSolution)
//  3. Inspecting progress via session status and collaboration stats
//
// The façade delegates orchestration to hub.Hub while keeping setup concise.
// All defaults are safe for local development and testing; production
// deployments typically supply model-backed participants, a durable session
// store and a structured logger.
package hivemind

import (
	"context"
	"time"

	"github.com/cwbhub/hivemind/collab"
	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/hub"
	"github.com/cwbhub/hivemind/logging"
	"github.com/cwbhub/hivemind/participant"
	"github.com/cwbhub/hivemind/router"
)

// Options configures the HiveMind instance.
type Options struct {
	// Participants is the team consulted for every request. Defaults to the
	// built-in eight-specialist team.
	Participants []core.Participant

	// Selector picks which participants handle a given request. Defaults to
	// the keyword selector with the built-in expertise tables.
	Selector router.Selector

	// CollabGraph defines the pairings, collaboration types and priorities
	// used during the collaboration phase. Defaults to the built-in graph.
	CollabGraph *collab.Graph

	// MaxCollaborationsPerRound caps how many pairings execute per round.
	MaxCollaborationsPerRound int

	// Stores (default to in-memory implementations if not provided).
	SessionStore core.SessionStore
	Cache        core.ResponseCache

	// CacheTTL bounds the lifetime of cached responses.
	CacheTTL time.Duration

	// PhaseTimeout bounds each pipeline phase. Zero disables the bound.
	PhaseTimeout time.Duration

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// HiveMind is the high-level façade aggregating the hub and its services.
type HiveMind struct {
	registry *participant.Registry
	hub      *hub.Hub
}

// New creates a HiveMind instance with optional overrides. Any unset
// service is initialized with an in-memory implementation.
func New(optFns ...func(o *Options)) (*HiveMind, error) {
	opts := Options{
		Participants:              participant.DefaultTeam(),
		MaxCollaborationsPerRound: collab.DefaultMaxPerRound,
		PhaseTimeout:              hub.DefaultPhaseTimeout,
		Logger:                    logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	registry, err := participant.NewRegistry(opts.Participants...)
	if err != nil {
		return nil, err
	}

	collabRouter := collab.NewRouter(registry, func(o *collab.RouterOptions) {
		if opts.CollabGraph != nil {
			o.Graph = opts.CollabGraph
		}
		o.MaxPerRound = opts.MaxCollaborationsPerRound
		o.Logger = opts.Logger
	})

	h, err := hub.New(registry, func(o *hub.Options) {
		o.Selector = opts.Selector
		o.CollabRouter = collabRouter
		if opts.SessionStore != nil {
			o.SessionStore = opts.SessionStore
		}
		if opts.Cache != nil {
			o.Cache = opts.Cache
		}
		o.CacheTTL = opts.CacheTTL
		o.PhaseTimeout = opts.PhaseTimeout
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, err
	}

	return &HiveMind{registry: registry, hub: h}, nil
}

// ProcessRequest runs the full pipeline for the request and returns the
// final response with its session id.
func (m *HiveMind) ProcessRequest(ctx context.Context, request string) (*hub.Result, error) {
	return m.hub.ProcessRequest(ctx, request)
}

// IterateSolution refines an existing session's solution with feedback.
func (m *HiveMind) IterateSolution(ctx context.Context, sessionID, feedback string) (*hub.Result, error) {
	return m.hub.IterateSolution(ctx, sessionID, feedback)
}

// SessionStatus returns a point-in-time snapshot of the session.
func (m *HiveMind) SessionStatus(sessionID string) (core.Status, error) {
	return m.hub.SessionStatus(sessionID)
}

// ListActiveSessions returns a status snapshot for every stored session,
// keyed by session id.
func (m *HiveMind) ListActiveSessions() map[string]core.Status {
	return m.hub.ListActiveSessions()
}

// Stats reports aggregate counters across all sessions and participants.
func (m *HiveMind) Stats() hub.Stats {
	return m.hub.Stats()
}

// CollaborationStats exposes the collaboration counters.
func (m *HiveMind) CollaborationStats() collab.Stats {
	return m.hub.CollaborationStats()
}

// Team returns the profiles of the registered participants.
func (m *HiveMind) Team() []core.Profile {
	return m.registry.Profiles()
}

// Shutdown drains active runs, rejects further calls and ends all sessions.
func (m *HiveMind) Shutdown() {
	m.hub.Shutdown()
}
