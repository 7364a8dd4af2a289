package user

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"      // Back-office administrator - full access
	RoleSupervisor Role = "supervisor" // Floor supervisor - runs check-ins, sessions, bags
	RoleExporter   Role = "exporter"   // Exporter client - read access scoped to their output
)

type User struct {
	ID           string
	Email        string
	FullName     string
	PasswordHash *string
	Role         Role
	ExporterID   *string
	FacilityID   *string
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if user is an administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsSupervisor checks if user is supervisor or admin
func (u *User) IsSupervisor() bool {
	return u.Role == RoleSupervisor || u.Role == RoleAdmin
}

// CanMutateWorkforce checks if user may run check-ins, sessions and bag records
func (u *User) CanMutateWorkforce() bool {
	return u.IsSupervisor()
}
