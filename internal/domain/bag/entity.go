package bag

import "time"

type Status string

const (
	StatusCompleted Status = "completed"
	StatusValidated Status = "validated"
	StatusLocked    Status = "locked"
)

const (
	// MinWorkers and MaxWorkers bound how many workers jointly produce one bag.
	MinWorkers = 2
	MaxWorkers = 4
)

// BagWorker links a bag to one contributing worker and the session the
// labor was performed under. These are weak, lookup-only references:
// deactivating the worker or closing the session later never invalidates
// the historical bag.
type BagWorker struct {
	WorkerID  string `json:"worker_id"`
	SessionID string `json:"session_id"`
}

// Bag is an immutable record of one unit of processed output. Bag numbers
// are globally unique; comparison is case-insensitive via uppercase
// normalization at write time.
type Bag struct {
	ID           string
	BagNumber    string
	ExporterID   string
	FacilityID   string
	SupervisorID string
	Date         time.Time
	WeightKG     float64
	Status       Status
	Workers      []BagWorker
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	ExporterName *string
}
