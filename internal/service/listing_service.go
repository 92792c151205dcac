package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/sublease-service/internal/auth"
	"github.com/spec-kit/sublease-service/internal/domain"
	"github.com/spec-kit/sublease-service/internal/events"
	"github.com/spec-kit/sublease-service/internal/repository"
	apperrors "github.com/spec-kit/sublease-service/pkg/util/errorutil"
)

// FloorPlanWarning is returned when the listing write succeeded but the
// dependent floor-plan batch did not.
const FloorPlanWarning = "listing created but floor plans could not be saved"

// ListingService manages agency listings and their floor plans.
type ListingService struct {
	gate       accessGate
	agencies   repository.AgencyRepository
	listings   repository.ListingRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ListingDependencies bundles what the service needs.
type ListingDependencies struct {
	Verifier    auth.TokenVerifier
	Admins      *auth.AdminList
	AgencyRepo  repository.AgencyRepository
	ListingRepo repository.ListingRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewListingService constructs the service.
func NewListingService(deps ListingDependencies) *ListingService {
	return &ListingService{
		gate:       accessGate{verifier: deps.Verifier, admins: deps.Admins},
		agencies:   deps.AgencyRepo,
		listings:   deps.ListingRepo,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ListingInput is the caller-supplied listing payload.
type ListingInput struct {
	AgencyID    string
	Title       string
	Address     string
	Description string
	ImageURL    string
	AvailableAt *time.Time
}

// FloorPlanInput is one floor plan in the creation payload.
type FloorPlanInput struct {
	Name      string
	Bedrooms  int
	Bathrooms float64
	Rent      int
	SqFt      int
	ImageURL  string
}

// CreateAgencyListing inserts the listing and then its floor plans. The
// caller must own the agency, and the declared agency_id must match the
// agency found. The listing is the primary artifact: a floor-plan batch
// failure yields a warning, never a failed request.
func (s *ListingService) CreateAgencyListing(ctx context.Context, token string, input ListingInput, plans []FloorPlanInput) (*domain.AgencyListing, []domain.FloorPlan, string, error) {
	identity, _, err := s.gate.authenticate(ctx, token)
	if err != nil {
		return nil, nil, "", err
	}

	agency, err := s.agencies.GetByID(ctx, input.AgencyID)
	if err != nil {
		return nil, nil, "", apperrors.NewUpstreamFailure("failed to load agency", err)
	}
	if err := auth.RequireOwner(identity, agency.UserID, "You do not own this agency"); err != nil {
		return nil, nil, "", err
	}

	listing := &domain.AgencyListing{
		AgencyID:    input.AgencyID,
		Title:       input.Title,
		Address:     input.Address,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		AvailableAt: input.AvailableAt,
	}
	if err := s.listings.Create(ctx, listing); err != nil {
		return nil, nil, "", apperrors.NewUpstreamFailure("failed to create listing", err)
	}

	floorPlans := make([]domain.FloorPlan, 0, len(plans))
	for _, plan := range plans {
		floorPlans = append(floorPlans, domain.FloorPlan{
			ID:        uuid.NewString(),
			ListingID: listing.ID,
			Name:      plan.Name,
			Bedrooms:  plan.Bedrooms,
			Bathrooms: plan.Bathrooms,
			Rent:      plan.Rent,
			SqFt:      plan.SqFt,
			ImageURL:  plan.ImageURL,
		})
	}

	warning := ""
	if err := s.listings.CreateFloorPlans(ctx, floorPlans); err != nil {
		warning = FloorPlanWarning
		floorPlans = nil
		s.logger.Warn("floor plan batch failed",
			zap.String("listing_id", listing.ID),
			zap.Error(err))
	}

	s.publish(ctx, events.EventListingCreated, listing.ID, identity.ID, events.ListingCreatedPayload{
		AgencyID:       listing.AgencyID,
		FloorPlanCount: len(floorPlans),
		Warning:        warning,
	})
	return listing, floorPlans, warning, nil
}

// ListListings returns all listings for public browsing.
func (s *ListingService) ListListings(ctx context.Context) ([]domain.AgencyListing, error) {
	listings, err := s.listings.List(ctx)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to list listings", err)
	}
	return listings, nil
}

// ListByAgency returns one agency's listings.
func (s *ListingService) ListByAgency(ctx context.Context, agencyID string) ([]domain.AgencyListing, error) {
	listings, err := s.listings.ListByAgency(ctx, agencyID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to list listings", err)
	}
	return listings, nil
}

// FloorPlans returns the floor plans of one listing.
func (s *ListingService) FloorPlans(ctx context.Context, listingID string) ([]domain.FloorPlan, error) {
	plans, err := s.listings.FloorPlansByListing(ctx, listingID)
	if err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to load floor plans", err)
	}
	return plans, nil
}

func (s *ListingService) publish(ctx context.Context, eventType events.EventType, recordID, actorID string, payload interface{}) {
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
