package domain

import "time"

// Agency represents a property-management organization with exactly one
// owning identity. is_verified always starts false and is only flipped by an
// administrator.
type Agency struct {
	ID          string
	UserID      string
	Name        string
	Location    string
	LogoURL     string
	Description string
	IsVerified  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AgencyUpdate carries the owner-editable profile fields of an agency.
// The verification flag is deliberately absent.
type AgencyUpdate struct {
	Name        string
	Location    string
	LogoURL     string
	Description string
}
