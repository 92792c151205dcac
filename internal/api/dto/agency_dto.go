package dto

import (
	"time"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// AgencyPayload mirrors the agency row supplied by the caller.
type AgencyPayload struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
	Description string `json:"description"`
}

// CreateAgencyRequest is the body of POST /api/create-agency.
type CreateAgencyRequest struct {
	AgencyData *AgencyPayload `json:"agencyData"`
	UserToken  string         `json:"userToken"`
}

// UpdateAgencyRequest is the body of POST /api/update-agency.
type UpdateAgencyRequest struct {
	AgencyID   string         `json:"agencyId"`
	AgencyData *AgencyPayload `json:"agencyData"`
	UserToken  string         `json:"userToken"`
}

// VerifyAgencyRequest is the body of POST /api/verify-agency.
type VerifyAgencyRequest struct {
	AgencyID   string `json:"agencyId"`
	AdminToken string `json:"adminToken"`
}

// AgencyResponse is the wire shape of a stored agency.
type AgencyResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	LogoURL     string    `json:"logo_url"`
	Description string    `json:"description"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewAgencyResponse maps the domain entity.
func NewAgencyResponse(agency *domain.Agency) AgencyResponse {
	return AgencyResponse{
		ID:          agency.ID,
		UserID:      agency.UserID,
		Name:        agency.Name,
		Location:    agency.Location,
		LogoURL:     agency.LogoURL,
		Description: agency.Description,
		IsVerified:  agency.IsVerified,
		CreatedAt:   agency.CreatedAt,
		UpdatedAt:   agency.UpdatedAt,
	}
}
