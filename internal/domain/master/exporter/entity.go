package exporter

import "time"

// Exporter is the client entity bags are processed for.
type Exporter struct {
	ID        string
	Code      string // unique business code, uppercase
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
