package cooperative

import "time"

// Cooperative is the organizational grouping workers belong to.
type Cooperative struct {
	ID        string
	Code      string // unique business code, uppercase
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
