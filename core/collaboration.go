package core

// CollabType classifies the nature of a pairwise exchange between two
// participants.
type CollabType string

const (
	// CollabPeerReview is a critical review of one participant's output by
	// another.
	CollabPeerReview CollabType = "peer_review"
	// CollabExpertiseSharing is the default exchange for pairs without a
	// more specific mapping.
	CollabExpertiseSharing CollabType = "expertise_sharing"
	// CollabProblemSolving is a joint working exchange on a shared problem.
	CollabProblemSolving CollabType = "problem_solving"
	// CollabDecisionMaking is an exchange that settles a directional choice.
	CollabDecisionMaking CollabType = "decision_making"
	// CollabKnowledgeTransfer moves domain knowledge from one participant to
	// another.
	CollabKnowledgeTransfer CollabType = "knowledge_transfer"
)

// Opportunity is a proposed pairwise exchange within one round. It is
// ephemeral: computed per round, never persisted.
type Opportunity struct {
	RequesterID    string     `json:"requester_id"`
	CollaboratorID string     `json:"collaborator_id"`
	Type           CollabType `json:"type"`
	Priority       int        `json:"priority"`
}

// Outcome is the explicit result of one executed opportunity. Failed
// outcomes are logged and dropped by the caller; they never abort sibling
// tasks or the round.
type Outcome struct {
	Opportunity  Opportunity
	Contribution Contribution
	Err          error
}
