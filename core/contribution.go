package core

import "time"

// Phase is a named stage of the fixed four-stage pipeline a session walks
// through during one processing run.
type Phase string

const (
	// PhaseAnalysis is the initial stage: each selected participant analyzes
	// the request independently.
	PhaseAnalysis Phase = "analysis"
	// PhaseCollaboration is the pairwise exchange stage driven by the
	// collaboration router.
	PhaseCollaboration Phase = "collaboration"
	// PhaseSolutionProposal is the stage where per-phase syntheses are
	// produced.
	PhaseSolutionProposal Phase = "solution_proposal"
	// PhaseCommunication is the terminal stage producing the final report.
	PhaseCommunication Phase = "communication"
)

// Contribution is one participant's (or one synthetic source's) output
// within a session round. Contributions are immutable after they are
// appended to a session.
type Contribution struct {
	ParticipantID   string    `json:"participant_id"`
	ParticipantName string    `json:"participant_name"`
	Phase           Phase     `json:"phase"`
	Content         string    `json:"content"`
	Confidence      float64   `json:"confidence"`
	DependsOn       []string  `json:"depends_on,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

// NewContribution builds a contribution stamped with the current UTC time.
// Confidence is clamped into [0,1].
func NewContribution(participantID, participantName string, phase Phase, content string, confidence float64, dependsOn ...string) Contribution {
	return Contribution{
		ParticipantID:   participantID,
		ParticipantName: participantName,
		Phase:           phase,
		Content:         content,
		Confidence:      ClampConfidence(confidence),
		DependsOn:       dependsOn,
		Timestamp:       time.Now().UTC(),
	}
}

// ClampConfidence bounds v into the valid confidence range [0,1].
func ClampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
