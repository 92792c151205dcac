package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/events"
	"github.com/spec-kit/sublease-service/internal/repository"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// RequestService manages tenant-authored sublease requests. Callers are
// authenticated by the route middleware, so operations receive the resolved
// identity instead of a raw token.
type RequestService struct {
	requests   repository.RequestRepository
	dispatcher events.Dispatcher
}

// NewRequestService constructs the service.
func NewRequestService(requests repository.RequestRepository, dispatcher events.Dispatcher) *RequestService {
	return &RequestService{requests: requests, dispatcher: dispatcher}
}

// RequestInput is the caller-supplied request payload.
type RequestInput struct {
	Title       string
	Description string
	Budget      int
	MoveIn      *time.Time
	MoveOut     *time.Time
}

// CreateRequest inserts a request owned by the caller.
func (s *RequestService) CreateRequest(ctx context.Context, identity *domain.Identity, input RequestInput) (*domain.SubleaseRequest, error) {
	request := &domain.SubleaseRequest{
		UserID:      identity.ID,
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		MoveIn:      input.MoveIn,
		MoveOut:     input.MoveOut,
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to create request", err)
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventRequestCreated,
			RecordID:  request.ID,
			ActorID:   identity.ID,
			Timestamp: time.Now(),
		})
	}
	return request, nil
}

// UpdateRequest modifies a request after checking the caller owns it.
func (s *RequestService) UpdateRequest(ctx context.Context, identity *domain.Identity, requestID string, input RequestInput) (*domain.SubleaseRequest, error) {
	existing, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to load request", err)
	}
	if err := auth.RequireOwner(identity, existing.UserID, "You do not own this request"); err != nil {
		return nil, err
	}

	existing.Title = input.Title
	existing.Description = input.Description
	existing.Budget = input.Budget
	existing.MoveIn = input.MoveIn
	existing.MoveOut = input.MoveOut
	if err := s.requests.Update(ctx, existing); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to update request", err)
	}
	return existing, nil
}

// DeleteRequest removes a request after checking the caller owns it.
func (s *RequestService) DeleteRequest(ctx context.Context, identity *domain.Identity, requestID string) error {
	existing, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return apperrors.NewUpstreamFailure("failed to load request", err)
	}
	if err := auth.RequireOwner(identity, existing.UserID, "You do not own this request"); err != nil {
		return err
	}
	if err := s.requests.Delete(ctx, requestID); err != nil {
		return apperrors.NewUpstreamFailure("failed to delete request", err)
	}
	return nil
}

// ListRequests returns all requests for public browsing.
func (s *RequestService) ListRequests(ctx context.Context) ([]domain.SubleaseRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to list requests", err)
	}
	return requests, nil
}
