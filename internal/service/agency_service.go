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

// AgencyService manages agency registration, owner updates and admin
// verification.
type AgencyService struct {
	gate       accessGate
	agencies   repository.AgencyRepository
	dispatcher events.Dispatcher
}

// AgencyDependencies bundles what the service needs.
type AgencyDependencies struct {
	Verifier   auth.TokenVerifier
	Admins     *auth.AdminList
	AgencyRepo repository.AgencyRepository
	Dispatcher events.Dispatcher
}

// NewAgencyService constructs the service.
func NewAgencyService(deps AgencyDependencies) *AgencyService {
	return &AgencyService{
		gate:       accessGate{verifier: deps.Verifier, admins: deps.Admins},
		agencies:   deps.AgencyRepo,
		dispatcher: deps.Dispatcher,
	}
}

// AgencyInput is the caller-supplied agency payload.
type AgencyInput struct {
	UserID      string
	Name        string
	Location    string
	LogoURL     string
	Description string
}

// CreateAgency registers an agency owned by the verified identity. The
// declared user_id must equal the caller; verification always starts false.
func (s *AgencyService) CreateAgency(ctx context.Context, token string, input AgencyInput) (*domain.Agency, error) {
	identity, _, err := s.gate.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, input.UserID, "Agency user_id does not match authenticated user"); err != nil {
		return nil, err
	}

	agency := &domain.Agency{
		UserID:      input.UserID,
		Name:        input.Name,
		Location:    input.Location,
		LogoURL:     input.LogoURL,
		Description: input.Description,
	}
	if err := s.agencies.Create(ctx, agency); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to create agency", err)
	}

	s.publish(ctx, events.EventAgencyCreated, agency.ID, identity.ID, nil)
	return agency, nil
}

// UpdateAgency modifies the owner-editable profile fields of an agency. The
// stored row's user_id must match the verified identity.
func (s *AgencyService) UpdateAgency(ctx context.Context, token, agencyID string, update domain.AgencyUpdate) (*domain.Agency, error) {
	identity, _, err := s.gate.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	existing, err := s.agencies.GetByID(ctx, agencyID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to load agency", err)
	}
	if err := auth.RequireOwner(identity, existing.UserID, "You do not own this agency"); err != nil {
		return nil, err
	}

	agency, err := s.agencies.Update(ctx, agencyID, update)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to update agency", err)
	}

	s.publish(ctx, events.EventAgencyUpdated, agency.ID, identity.ID, nil)
	return agency, nil
}

// VerifyAgency flips an agency's verification flag. Admin allow-list only.
func (s *AgencyService) VerifyAgency(ctx context.Context, adminToken, agencyID string) error {
	identity, role, err := s.gate.authenticate(ctx, adminToken)
	if err != nil {
		return err
	}
	if err := auth.RequireAdmin(role); err != nil {
		return err
	}

	if err := s.agencies.SetVerified(ctx, agencyID, true); err != nil {
		return apperrors.NewUpstreamFailure("failed to verify agency", err)
	}

	s.publish(ctx, events.EventAgencyVerified, agencyID, identity.ID, nil)
	return nil
}

// ListAgencies returns agencies for public browsing.
func (s *AgencyService) ListAgencies(ctx context.Context, verifiedOnly bool) ([]domain.Agency, error) {
	agencies, err := s.agencies.List(ctx, verifiedOnly)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to list agencies", err)
	}
	return agencies, nil
}

func (s *AgencyService) publish(ctx context.Context, eventType events.EventType, recordID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		RecordID:  recordID,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
