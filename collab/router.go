package collab

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/cwbhub/hivemind/core"
	"github.com/cwbhub/hivemind/logging"
	"github.com/cwbhub/hivemind/participant"
)

// DefaultMaxPerRound caps the number of opportunities executed per round,
// keeping worst-case concurrency constant regardless of how many
// participants responded.
const DefaultMaxPerRound = 6

// collaborationConfidence is assigned to successful pairwise contributions.
const collaborationConfidence = 0.85

// Router turns one round of contributions into a bounded set of executed
// pairwise collaborations. Failures are isolated per opportunity: a failing
// task is logged and dropped, never aborting siblings or the round.
type Router struct {
	registry    *participant.Registry
	graph       *Graph
	maxPerRound int
	recorder    *Recorder
	logger      logging.Logger
}

// RouterOptions configures a collaboration Router.
type RouterOptions struct {
	// Graph defaults to the routing graph of the default team.
	Graph *Graph
	// MaxPerRound defaults to DefaultMaxPerRound; values < 1 are replaced
	// with the default.
	MaxPerRound int
	// HistorySize bounds the collaboration record ring buffer.
	HistorySize int
	// Logger defaults to NoOpLogger.
	Logger logging.Logger
}

// NewRouter builds a Router over the given registry.
func NewRouter(registry *participant.Registry, optFns ...func(o *RouterOptions)) *Router {
	opts := RouterOptions{
		Graph:       DefaultGraph(),
		MaxPerRound: DefaultMaxPerRound,
		HistorySize: DefaultHistorySize,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxPerRound < 1 {
		opts.MaxPerRound = DefaultMaxPerRound
	}
	return &Router{
		registry:    registry,
		graph:       opts.Graph,
		maxPerRound: opts.MaxPerRound,
		recorder:    NewRecorder(opts.HistorySize),
		logger:      opts.Logger,
	}
}

// Opportunities proposes pairwise collaborations for the round: for every
// responding participant, every preferred collaborator that also responded
// yields one requester→collaborator opportunity typed and prioritized by
// the graph. The result is sorted by priority descending (ties broken by
// requester then collaborator id for determinism) and truncated to the
// per-round cap.
func (r *Router) Opportunities(contributions []core.Contribution) []core.Opportunity {
	responded := make(map[string]bool, len(contributions))
	for _, c := range contributions {
		responded[c.ParticipantID] = true
	}
	requesters := make([]string, 0, len(responded))
	for id := range responded {
		requesters = append(requesters, id)
	}
	sort.Strings(requesters)

	var opportunities []core.Opportunity
	for _, requester := range requesters {
		for _, collaborator := range r.graph.Preferred(requester) {
			if collaborator == requester || !responded[collaborator] {
				continue
			}
			opportunities = append(opportunities, core.Opportunity{
				RequesterID:    requester,
				CollaboratorID: collaborator,
				Type:           r.graph.TypeOf(requester, collaborator),
				Priority:       r.graph.PriorityOf(requester, collaborator),
			})
		}
	}

	sort.Slice(opportunities, func(i, j int) bool {
		a, b := opportunities[i], opportunities[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if a.RequesterID != b.RequesterID {
			return a.RequesterID < b.RequesterID
		}
		return a.CollaboratorID < b.CollaboratorID
	})

	if len(opportunities) > r.maxPerRound {
		opportunities = opportunities[:r.maxPerRound]
	}
	return opportunities
}

// Execute runs the selected opportunities as a bounded batch of parallel
// tasks and returns the contributions of the successful ones. Each task's
// outcome is collected explicitly; failed outcomes (including context
// timeouts) are logged and excluded.
func (r *Router) Execute(ctx context.Context, opportunities []core.Opportunity, contextText string) []core.Contribution {
	if len(opportunities) == 0 {
		return nil
	}

	peerContext := fmt.Sprintf("Collaboration regarding: %s", contextText)
	outcomes := make(chan core.Outcome, len(opportunities))

	var wg sync.WaitGroup
	for _, opp := range opportunities {
		wg.Add(1)
		go func(opp core.Opportunity) {
			defer wg.Done()
			outcomes <- r.executeOne(ctx, opp, peerContext)
		}(opp)
	}
	wg.Wait()
	close(outcomes)

	var applied []core.Contribution
	for outcome := range outcomes {
		if outcome.Err != nil {
			r.logger.Warn("collaboration dropped",
				"requester", outcome.Opportunity.RequesterID,
				"collaborator", outcome.Opportunity.CollaboratorID,
				"type", string(outcome.Opportunity.Type),
				"error", outcome.Err.Error(),
			)
			continue
		}
		applied = append(applied, outcome.Contribution)
	}
	return applied
}

func (r *Router) executeOne(ctx context.Context, opp core.Opportunity, peerContext string) core.Outcome {
	requester, ok := r.registry.Get(opp.RequesterID)
	if !ok {
		return core.Outcome{Opportunity: opp, Err: fmt.Errorf("requester %s not registered", opp.RequesterID)}
	}
	if _, ok := r.registry.Get(opp.CollaboratorID); !ok {
		return core.Outcome{Opportunity: opp, Err: fmt.Errorf("collaborator %s not registered", opp.CollaboratorID)}
	}

	start := time.Now()
	text, err := requester.Collaborate(ctx, opp.CollaboratorID, peerContext)
	if err != nil {
		return core.Outcome{Opportunity: opp, Err: fmt.Errorf("collaborate %s -> %s: %w", opp.RequesterID, opp.CollaboratorID, err)}
	}

	r.recorder.Record(Record{
		RequesterID:    opp.RequesterID,
		CollaboratorID: opp.CollaboratorID,
		Type:           opp.Type,
		Duration:       time.Since(start),
		Timestamp:      time.Now().UTC(),
	})
	r.logger.Debug("collaboration completed",
		"requester", opp.RequesterID,
		"collaborator", opp.CollaboratorID,
		"type", string(opp.Type),
		"duration", time.Since(start).String(),
	)

	return core.Outcome{
		Opportunity: opp,
		Contribution: core.NewContribution(
			opp.RequesterID,
			requester.Profile().Name,
			core.PhaseCollaboration,
			text,
			collaborationConfidence,
			opp.CollaboratorID,
		),
	}
}

// Stats returns the router's collaboration statistics.
func (r *Router) Stats() Stats { return r.recorder.Stats() }
