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

// ProfileService manages profile upserts and admin verification of users.
type ProfileService struct {
	gate       accessGate
	profiles   repository.ProfileRepository
	dispatcher events.Dispatcher
}

// ProfileDependencies bundles what the service needs.
type ProfileDependencies struct {
	Verifier    auth.TokenVerifier
	Admins      *auth.AdminList
	ProfileRepo repository.ProfileRepository
	Dispatcher  events.Dispatcher
}

// NewProfileService constructs the service.
func NewProfileService(deps ProfileDependencies) *ProfileService {
	return &ProfileService{
		gate:       accessGate{verifier: deps.Verifier, admins: deps.Admins},
		profiles:   deps.ProfileRepo,
		dispatcher: deps.Dispatcher,
	}
}

// ProfileInput is the caller-supplied profile payload.
type ProfileInput struct {
	ID       string
	Email    string
	FullName string
	Phone    string
	Role     domain.ProfileRole
}

// CreateProfile upserts the caller's own profile. The declared profile id
// must equal the verified identity; repeated calls are idempotent.
func (s *ProfileService) CreateProfile(ctx context.Context, token string, input ProfileInput) (*domain.Profile, error) {
	identity, _, err := s.gate.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if err := auth.RequireOwner(identity, input.ID, "Profile id does not match authenticated user"); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.ProfileRoleTenant
	}

	profile := &domain.Profile{
		ID:       input.ID,
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     role,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to save profile", err)
	}

	s.publish(ctx, events.EventProfileUpserted, profile.ID, identity.ID, nil)
	return profile, nil
}

// VerifyUser flips a profile's verification flag. Admin allow-list only.
func (s *ProfileService) VerifyUser(ctx context.Context, adminToken, userID string) error {
	identity, role, err := s.gate.authenticate(ctx, adminToken)
	if err != nil {
		return err
	}
	if err := auth.RequireAdmin(role); err != nil {
		return err
	}

	if err := s.profiles.SetVerified(ctx, userID, true); err != nil {
		return apperrors.NewUpstreamFailure("failed to verify user", err)
	}

	s.publish(ctx, events.EventUserVerified, userID, identity.ID, nil)
	return nil
}

func (s *ProfileService) publish(ctx context.Context, eventType events.EventType, recordID, actorID string, payload interface{}) {
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
