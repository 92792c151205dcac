package dto

import (
	"time"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// RequestPayload mirrors the sublease-request row supplied by the caller.
type RequestPayload struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      int        `json:"budget"`
	MoveIn      *time.Time `json:"move_in"`
	MoveOut     *time.Time `json:"move_out"`
}

// RequestResponse is the wire shape of a stored sublease request.
type RequestResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Budget      int        `json:"budget"`
	MoveIn      *time.Time `json:"move_in,omitempty"`
	MoveOut     *time.Time `json:"move_out,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewRequestResponse maps the domain entity.
func NewRequestResponse(request *domain.SubleaseRequest) RequestResponse {
	return RequestResponse{
		ID:          request.ID,
		UserID:      request.UserID,
		Title:       request.Title,
		Description: request.Description,
		Budget:      request.Budget,
		MoveIn:      request.MoveIn,
		MoveOut:     request.MoveOut,
		CreatedAt:   request.CreatedAt,
		UpdatedAt:   request.UpdatedAt,
	}
}
