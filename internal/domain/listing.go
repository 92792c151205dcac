package domain

import "time"

// AgencyListing is an official listing published by an agency.
type AgencyListing struct {
	ID          string
	AgencyID    string
	Title       string
	Address     string
	Description string
	ImageURL    string
	AvailableAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FloorPlan is a child of an agency listing.
type FloorPlan struct {
	ID        string
	ListingID string
	Name      string
	Bedrooms  int
	Bathrooms float64
	Rent      int
	SqFt      int
	ImageURL  string
	CreatedAt time.Time
}
