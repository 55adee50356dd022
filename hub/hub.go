package hub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cwbhub/hivemind/cache"
	"github.com/cwbhub/hivemind/collab"
	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/logging"
	"github.com/cwbhub/hivemind/participant"
	"github.com/cwbhub/hivemind/router"
	"github.com/cwbhub/hivemind/session"
	"github.com/cwbhub/hivemind/synth"
)

// Confidence assigned to analysis phase contributions. Collaboration and
// synthesis contributions carry their own fixed confidences.
const analysisConfidence = 0.8

// ResponseNamespace is the cache namespace holding final responses keyed by
// request fingerprint.
const ResponseNamespace = "responses"

// DefaultPhaseTimeout bounds each phase of a run. Zero disables the bound.
const DefaultPhaseTimeout = 2 * time.Minute

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// Selector picks the participants consulted for a request. Defaults to
	// the keyword selector with the built-in expertise tables.
	Selector router.Selector
	// CollabRouter routes and executes pairwise collaborations. Defaults to
	// a router over the registry with the built-in graph.
	CollabRouter *collab.Router
	// Facilitator runs the group discussion after collaboration rounds.
	Facilitator *collab.Facilitator
	// Synthesizer merges contributions into phase syntheses and the final
	// response.
	Synthesizer *synth.Synthesizer
	// SessionStore persists sessions. Defaults to the in-memory store.
	SessionStore core.SessionStore
	// Cache serves repeated requests. Defaults to the in-memory TTL cache.
	Cache core.ResponseCache
	// CacheTTL bounds the lifetime of cached responses. Non-positive values
	// fall back to the cache's namespace default.
	CacheTTL time.Duration
	// PhaseTimeout bounds each phase of a run. Zero disables the bound.
	PhaseTimeout time.Duration
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// Result is the outcome of a completed run.
type Result struct {
	SessionID string
	Response  string
	FromCache bool
}

// Hub coordinates the full processing pipeline. Public methods are safe for
// concurrent use; runs on distinct sessions proceed in parallel while runs
// on the same session are serialized.
type Hub struct {
	registry     *participant.Registry
	selector     router.Selector
	collab       *collab.Router
	facilitator  *collab.Facilitator
	synthesizer  *synth.Synthesizer
	sessions     core.SessionStore
	cache        core.ResponseCache
	cacheTTL     time.Duration
	phaseTimeout time.Duration
	logger       logging.Logger

	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
	inflight     map[string]*flight
	closed       bool
	active       sync.WaitGroup
}

// flight is a single-flight slot shared by concurrent callers submitting
// the same request text.
type flight struct {
	done     chan struct{}
	response string
	err      error
}

// New constructs a Hub over the given participant registry.
func New(registry *participant.Registry, optFns ...func(o *Options)) (*Hub, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, core.ErrNoParticipants
	}

	opts := Options{
		SessionStore: session.NewInMemoryStore(),
		Cache:        cache.NewInMemory(),
		PhaseTimeout: DefaultPhaseTimeout,
		Logger:       logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Selector == nil {
		opts.Selector = router.NewKeywordSelector(func(o *router.Options) {
			o.Logger = opts.Logger
		})
	}
	if opts.CollabRouter == nil {
		opts.CollabRouter = collab.NewRouter(registry, func(o *collab.RouterOptions) {
			o.Logger = opts.Logger
		})
	}
	if opts.Facilitator == nil {
		opts.Facilitator = collab.NewFacilitator(opts.Logger)
	}
	if opts.Synthesizer == nil {
		opts.Synthesizer = synth.New(func(o *synth.Options) {
			o.Logger = opts.Logger
		})
	}

	return &Hub{
		registry:     registry,
		selector:     opts.Selector,
		collab:       opts.CollabRouter,
		facilitator:  opts.Facilitator,
		synthesizer:  opts.Synthesizer,
		sessions:     opts.SessionStore,
		cache:        opts.Cache,
		cacheTTL:     opts.CacheTTL,
		phaseTimeout: opts.PhaseTimeout,
		logger:       opts.Logger,
		sessionLocks: make(map[string]*sync.Mutex),
		inflight:     make(map[string]*flight),
	}, nil
}

// ProcessRequest runs the full pipeline for the request under a freshly
// generated session id.
func (h *Hub) ProcessRequest(ctx context.Context, request string) (*Result, error) {
	return h.ProcessRequestWithID(ctx, core.NewID(), request)
}

// ProcessRequestWithID runs the full pipeline for the request under a
// caller-chosen session id. Identical request texts are served from the
// cache, and identical texts submitted concurrently share a single run.
func (h *Hub) ProcessRequestWithID(ctx context.Context, sessionID, request string) (*Result, error) {
	if err := h.beginRun(); err != nil {
		return nil, err
	}
	defer h.active.Done()

	fingerprint := core.Fingerprint(request)
	if cached, ok := h.cache.Get(ResponseNamespace, fingerprint); ok {
		h.logger.Debug("request served from cache", "session_id", sessionID)
		sess, err := h.materializeCached(sessionID, request, cached)
		if err != nil {
			return nil, err
		}
		return &Result{SessionID: sess.ID, Response: cached, FromCache: true}, nil
	}

	fl, leader := h.joinFlight(fingerprint)
	if !leader {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-fl.done:
		}
		if fl.err != nil {
			return nil, fl.err
		}
		sess, err := h.materializeCached(sessionID, request, fl.response)
		if err != nil {
			return nil, err
		}
		return &Result{SessionID: sess.ID, Response: fl.response, FromCache: true}, nil
	}

	sess, err := h.sessions.Create(sessionID, request)
	if err != nil {
		h.finishFlight(fingerprint, fl, "", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	unlock := h.lockSession(sessionID)
	response, err := h.runPipeline(ctx, sess, request)
	unlock()
	if err != nil {
		h.finishFlight(fingerprint, fl, "", err)
		return nil, err
	}

	h.cache.Set(ResponseNamespace, fingerprint, response, h.cacheTTL)
	h.finishFlight(fingerprint, fl, response, nil)
	return &Result{SessionID: sessionID, Response: response}, nil
}

// IterateSolution reruns the pipeline for an existing session with the new
// feedback folded into the request, overwriting the previous solution.
func (h *Hub) IterateSolution(ctx context.Context, sessionID, feedback string) (*Result, error) {
	if err := h.beginRun(); err != nil {
		return nil, err
	}
	defer h.active.Done()

	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}

	unlock := h.lockSession(sessionID)
	defer unlock()

	augmented := fmt.Sprintf("%s\n\nIteration feedback: %s", sess.Request, feedback)
	fingerprint := core.Fingerprint(augmented)
	if cached, ok := h.cache.Get(ResponseNamespace, fingerprint); ok {
		sess.ResetRun(augmented)
		sess.SetPhase(core.PhaseCommunication)
		sess.SetFinalSolution(cached)
		return &Result{SessionID: sessionID, Response: cached, FromCache: true}, nil
	}

	sess.ResetRun(augmented)

	response, err := h.runPipeline(ctx, sess, augmented)
	if err != nil {
		return nil, err
	}

	h.cache.Set(ResponseNamespace, fingerprint, response, h.cacheTTL)
	return &Result{SessionID: sessionID, Response: response}, nil
}

// SessionStatus returns a point-in-time snapshot of the session.
func (h *Hub) SessionStatus(sessionID string) (core.Status, error) {
	sess, err := h.sessions.Get(sessionID)
	if err != nil {
		return core.Status{}, err
	}
	return sess.Snapshot(), nil
}

// ListActiveSessions returns a status snapshot for every stored session,
// keyed by session id.
func (h *Hub) ListActiveSessions() map[string]core.Status {
	statuses := make(map[string]core.Status)
	for _, id := range h.sessions.List() {
		sess, err := h.sessions.Get(id)
		if err != nil {
			continue
		}
		statuses[id] = sess.Snapshot()
	}
	return statuses
}

// Stats summarizes hub-wide state across all sessions.
type Stats struct {
	ActiveSessions int          `json:"active_sessions"`
	Participants   int          `json:"participants"`
	Collaboration  collab.Stats `json:"collaboration"`
}

// Stats reports aggregate counters: stored sessions, registered participants
// and cumulative collaboration activity.
func (h *Hub) Stats() Stats {
	return Stats{
		ActiveSessions: len(h.sessions.List()),
		Participants:   h.registry.Len(),
		Collaboration:  h.collab.Stats(),
	}
}

// CollaborationStats exposes the collaboration router's counters.
func (h *Hub) CollaborationStats() collab.Stats {
	return h.collab.Stats()
}

// Shutdown drains active runs, rejects further calls and ends all sessions,
// releasing the session store. It is safe to call more than once.
func (h *Hub) Shutdown() {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.active.Wait()
	for _, id := range h.sessions.List() {
		_ = h.sessions.Delete(id)
	}
	h.mu.Lock()
	h.sessionLocks = make(map[string]*sync.Mutex)
	h.mu.Unlock()
	h.logger.Info("hub shut down")
}

func (h *Hub) beginRun() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return core.ErrHubClosed
	}
	h.active.Add(1)
	return nil
}

// lockSession serializes runs on one session id. Lock entries live until
// shutdown; the population is bounded by the session count.
func (h *Hub) lockSession(sessionID string) func() {
	h.mu.Lock()
	lock, exists := h.sessionLocks[sessionID]
	if !exists {
		lock = &sync.Mutex{}
		h.sessionLocks[sessionID] = lock
	}
	h.mu.Unlock()
	lock.Lock()
	return lock.Unlock
}

func (h *Hub) joinFlight(fingerprint string) (*flight, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if fl, exists := h.inflight[fingerprint]; exists {
		return fl, false
	}
	fl := &flight{done: make(chan struct{})}
	h.inflight[fingerprint] = fl
	return fl, true
}

func (h *Hub) finishFlight(fingerprint string, fl *flight, response string, err error) {
	h.mu.Lock()
	delete(h.inflight, fingerprint)
	h.mu.Unlock()
	fl.response = response
	fl.err = err
	close(fl.done)
}

// materializeCached records a completed session around a response that was
// produced by an earlier or concurrent identical run.
func (h *Hub) materializeCached(sessionID, request, response string) (*core.Session, error) {
	sess, err := h.sessions.Create(sessionID, request)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	sess.SetPhase(core.PhaseCommunication)
	sess.SetFinalSolution(response)
	return sess, nil
}

func (h *Hub) phaseContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.phaseTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.phaseTimeout)
}

// runPipeline drives one run through all four phases. On error the session
// is marked failed and nothing is cached.
func (h *Hub) runPipeline(ctx context.Context, sess *core.Session, request string) (string, error) {
	if err := h.runAnalysis(ctx, sess, request); err != nil {
		sess.MarkFailed()
		return "", err
	}

	if err := h.runCollaboration(ctx, sess, request); err != nil {
		sess.MarkFailed()
		return "", err
	}

	if err := h.runSolutionProposal(sess, request); err != nil {
		sess.MarkFailed()
		return "", err
	}

	response, err := h.runCommunication(sess, request)
	if err != nil {
		sess.MarkFailed()
		return "", err
	}
	return response, nil
}

// runAnalysis fans the request out to the selected participants in parallel.
// Any participant failure aborts the run.
func (h *Hub) runAnalysis(ctx context.Context, sess *core.Session, request string) error {
	phaseCtx, cancel := h.phaseContext(ctx)
	defer cancel()

	selected := h.selector.SelectParticipants(request, h.registry.IDs())
	h.logger.Debug("analysis phase starting", "session_id", sess.ID, "participants", len(selected))

	type analysisOutcome struct {
		contribution core.Contribution
		err          error
	}

	var wg sync.WaitGroup
	outcomes := make(chan analysisOutcome, len(selected))

	for _, id := range selected {
		p, ok := h.registry.Get(id)
		if !ok {
			continue
		}
		wg.Add(1)
		go func(id string, p core.Participant) {
			defer wg.Done()
			start := time.Now()
			text, err := p.Analyze(phaseCtx, request)
			if err != nil {
				outcomes <- analysisOutcome{err: fmt.Errorf("participant %s analysis failed: %w", id, err)}
				return
			}
			h.logger.Debug("analysis completed", "participant_id", id, "duration", time.Since(start))
			outcomes <- analysisOutcome{contribution: core.NewContribution(
				id, p.Profile().Name, core.PhaseAnalysis, text, analysisConfidence,
			)}
		}(id, p)
	}

	wg.Wait()
	close(outcomes)

	for outcome := range outcomes {
		if outcome.err != nil {
			return outcome.err
		}
		sess.AppendContribution(outcome.contribution)
	}
	return nil
}

// runCollaboration derives pairings from the analysis round, executes them
// in parallel, and holds a group discussion when enough voices responded.
// Individual collaboration failures are dropped, not fatal.
func (h *Hub) runCollaboration(ctx context.Context, sess *core.Session, request string) error {
	phaseCtx, cancel := h.phaseContext(ctx)
	defer cancel()

	sess.SetPhase(core.PhaseCollaboration)

	analysis := sess.ContributionsInPhase(core.PhaseAnalysis)
	opportunities := h.collab.Opportunities(analysis)
	h.logger.Debug("collaboration phase starting", "session_id", sess.ID, "opportunities", len(opportunities))

	applied := h.collab.Execute(phaseCtx, opportunities, request)
	for _, c := range applied {
		sess.AppendContribution(c)
	}

	if discussion, ok := h.facilitator.GroupDiscussion(sess.ContributionsInPhase(core.PhaseCollaboration), request); ok {
		sess.AppendContribution(discussion)
	}

	// The phase deadline only bounds the round; exchanges it cut off were
	// dropped above. Only caller cancellation aborts the run.
	return ctx.Err()
}

// runSolutionProposal appends the phase syntheses.
func (h *Hub) runSolutionProposal(sess *core.Session, request string) error {
	sess.SetPhase(core.PhaseSolutionProposal)

	analysis := sess.ContributionsInPhase(core.PhaseAnalysis)
	analysisSynthesis, err := h.synthesizer.SynthesizeAnalysisPhase(analysis, request)
	if err != nil {
		return fmt.Errorf("analysis synthesis failed: %w", err)
	}
	sess.AppendContribution(analysisSynthesis)

	collaboration := sess.ContributionsInPhase(core.PhaseCollaboration)
	if len(collaboration) > 0 {
		collabSynthesis, err := h.synthesizer.SynthesizeCollaborationPhase(collaboration, request)
		if err != nil {
			return fmt.Errorf("collaboration synthesis failed: %w", err)
		}
		sess.AppendContribution(collabSynthesis)
	}
	return nil
}

// runCommunication produces and records the final response.
func (h *Hub) runCommunication(sess *core.Session, request string) (string, error) {
	sess.SetPhase(core.PhaseCommunication)

	response, err := h.synthesizer.CreateFinalResponse(sess.Contributions(), request)
	if err != nil {
		return "", fmt.Errorf("final synthesis failed: %w", err)
	}
	sess.SetFinalSolution(response)
	h.logger.Info("run completed", "session_id", sess.ID, "iterations", sess.Iterations())
	return response, nil
}
