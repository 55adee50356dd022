package collab

import (
	"sync"
	"time"

	"github.com/cwbhub/hivemind/core"
)

// DefaultHistorySize bounds how many collaboration records are retained.
const DefaultHistorySize = 100

// Record documents one executed collaboration for the statistics surface.
type Record struct {
	RequesterID    string          `json:"requester_id"`
	CollaboratorID string          `json:"collaborator_id"`
	Type           core.CollabType `json:"type"`
	Duration       time.Duration   `json:"duration"`
	Timestamp      time.Time       `json:"timestamp"`
}

// ParticipantStats counts how often a participant requested collaborations
// and how often it was the collaborator.
type ParticipantStats struct {
	Requested    int `json:"requested"`
	Collaborated int `json:"collaborated"`
}

// Stats is the aggregate collaboration statistics snapshot.
type Stats struct {
	Total          int                         `json:"total"`
	ByParticipant  map[string]ParticipantStats `json:"by_participant"`
	RecentRecords  []Record                    `json:"recent_records"`
	RetainedWindow int                         `json:"retained_window"`
}

// Recorder keeps a bounded history of executed collaborations. Safe for
// concurrent use.
type Recorder struct {
	mu      sync.Mutex
	size    int
	total   int
	records []Record
}

// NewRecorder creates a recorder retaining at most size records (values < 1
// fall back to DefaultHistorySize).
func NewRecorder(size int) *Recorder {
	if size < 1 {
		size = DefaultHistorySize
	}
	return &Recorder{size: size}
}

// Record appends one collaboration record, evicting the oldest entry when
// the retention window is full.
func (r *Recorder) Record(rec Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.total++
	r.records = append(r.records, rec)
	if len(r.records) > r.size {
		r.records = r.records[len(r.records)-r.size:]
	}
}

// Stats returns a snapshot of the retained history. RecentRecords holds at
// most the last ten records.
func (r *Recorder) Stats() Stats {
	r.mu.Lock()
	defer r.mu.Unlock()

	byParticipant := make(map[string]ParticipantStats)
	for _, rec := range r.records {
		req := byParticipant[rec.RequesterID]
		req.Requested++
		byParticipant[rec.RequesterID] = req

		col := byParticipant[rec.CollaboratorID]
		col.Collaborated++
		byParticipant[rec.CollaboratorID] = col
	}

	recent := r.records
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	out := make([]Record, len(recent))
	copy(out, recent)

	return Stats{
		Total:          r.total,
		ByParticipant:  byParticipant,
		RecentRecords:  out,
		RetainedWindow: r.size,
	}
}
