package dto

import (
	"time"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// ListingPayload mirrors the listing row supplied by the caller.
type ListingPayload struct {
	AgencyID    string     `json:"agency_id"`
	Title       string     `json:"title"`
	Address     string     `json:"address"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	AvailableAt *time.Time `json:"available_at"`
}

// FloorPlanPayload is one floor plan in the creation payload.
type FloorPlanPayload struct {
	Name      string  `json:"name"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	Rent      int     `json:"rent"`
	SqFt      int     `json:"sq_ft"`
	ImageURL  string  `json:"image_url"`
}

// CreateListingRequest is the body of POST /api/create-agency-listing.
type CreateListingRequest struct {
	ListingData *ListingPayload    `json:"listingData"`
	FloorPlans  []FloorPlanPayload `json:"floorPlans"`
	UserToken   string             `json:"userToken"`
}

// ListingResponse is the wire shape of a stored listing.
type ListingResponse struct {
	ID          string              `json:"id"`
	AgencyID    string              `json:"agency_id"`
	Title       string              `json:"title"`
	Address     string              `json:"address"`
	Description string              `json:"description"`
	ImageURL    string              `json:"image_url"`
	AvailableAt *time.Time          `json:"available_at,omitempty"`
	FloorPlans  []FloorPlanResponse `json:"floor_plans,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// FloorPlanResponse is the wire shape of a stored floor plan.
type FloorPlanResponse struct {
	ID        string  `json:"id"`
	ListingID string  `json:"listing_id"`
	Name      string  `json:"name"`
	Bedrooms  int     `json:"bedrooms"`
	Bathrooms float64 `json:"bathrooms"`
	Rent      int     `json:"rent"`
	SqFt      int     `json:"sq_ft"`
	ImageURL  string  `json:"image_url"`
}

// NewListingResponse maps the domain entity and its floor plans.
func NewListingResponse(listing *domain.AgencyListing, plans []domain.FloorPlan) ListingResponse {
	resp := ListingResponse{
		ID:          listing.ID,
		AgencyID:    listing.AgencyID,
		Title:       listing.Title,
		Address:     listing.Address,
		Description: listing.Description,
		ImageURL:    listing.ImageURL,
		AvailableAt: listing.AvailableAt,
		CreatedAt:   listing.CreatedAt,
		UpdatedAt:   listing.UpdatedAt,
	}
	for _, plan := range plans {
		resp.FloorPlans = append(resp.FloorPlans, FloorPlanResponse{
			ID:        plan.ID,
			ListingID: plan.ListingID,
			Name:      plan.Name,
			Bedrooms:  plan.Bedrooms,
			Bathrooms: plan.Bathrooms,
			Rent:      plan.Rent,
			SqFt:      plan.SqFt,
			ImageURL:  plan.ImageURL,
		})
	}
	return resp
}
