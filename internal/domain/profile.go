package domain

import "time"

// ProfileRole tags what kind of account a profile represents.
type ProfileRole string

const (
	ProfileRoleTenant ProfileRole = "tenant"
	ProfileRoleAgency ProfileRole = "agency"
)

// Profile holds contact info for one identity. The row id equals the
// session-store identity id; creation is an upsert by the owner.
type Profile struct {
	ID         string
	Email      string
	FullName   string
	Phone      string
	Role       ProfileRole
	IsVerified bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
