package facility

import "time"

// Facility is a physical packhouse site where attendance and sessions occur.
type Facility struct {
	ID        string
	Code      string // unique business code, uppercase
	Name      string
	Location  *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
