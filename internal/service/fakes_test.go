package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// fakeVerifier resolves tokens from a fixed map.
type fakeVerifier struct {
	identities map[string]*domain.Identity
}

func newFakeVerifier() *fakeVerifier {
	return &fakeVerifier{identities: map[string]*domain.Identity{}}
}

func (v *fakeVerifier) add(token, id, email string) {
	v.identities[token] = &domain.Identity{ID: id, Email: email}
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (*domain.Identity, error) {
	identity, ok := v.identities[token]
	if !ok {
		return nil, errors.New("unknown token")
	}
	return identity, nil
}

// fakeProfileRepo keeps profiles in memory and counts mutations.
type fakeProfileRepo struct {
	profiles  map[string]*domain.Profile
	mutations int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: map[string]*domain.Profile{}}
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.mutations++
	if existing, ok := r.profiles[profile.ID]; ok {
		profile.IsVerified = existing.IsVerified
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = time.Now()
	}
	profile.UpdatedAt = time.Now()
	stored := *profile
	r.profiles[profile.ID] = &stored
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *profile
	return &copied, nil
}

func (r *fakeProfileRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	r.mutations++
	profile, ok := r.profiles[id]
	if !ok {
		return pgx.ErrNoRows
	}
	profile.IsVerified = verified
	return nil
}

func (r *fakeProfileRepo) EmailsByIDs(ctx context.Context, ids []string) ([]string, error) {
	var emails []string
	for _, id := range ids {
		if profile, ok := r.profiles[id]; ok {
			emails = append(emails, profile.Email)
		}
	}
	return emails, nil
}

// fakeAgencyRepo keeps agencies in memory and counts mutations.
type fakeAgencyRepo struct {
	agencies  map[string]*domain.Agency
	mutations int
	nextID    int
}

func newFakeAgencyRepo() *fakeAgencyRepo {
	return &fakeAgencyRepo{agencies: map[string]*domain.Agency{}}
}

func (r *fakeAgencyRepo) Create(ctx context.Context, agency *domain.Agency) error {
	r.mutations++
	r.nextID++
	agency.ID = "agency-" + strconv.Itoa(r.nextID)
	agency.IsVerified = false
	agency.CreatedAt = time.Now()
	agency.UpdatedAt = time.Now()
	stored := *agency
	r.agencies[agency.ID] = &stored
	return nil
}

func (r *fakeAgencyRepo) Update(ctx context.Context, id string, update domain.AgencyUpdate) (*domain.Agency, error) {
	r.mutations++
	agency, ok := r.agencies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	agency.Name = update.Name
	agency.Location = update.Location
	agency.LogoURL = update.LogoURL
	agency.Description = update.Description
	agency.UpdatedAt = time.Now()
	copied := *agency
	return &copied, nil
}

func (r *fakeAgencyRepo) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	agency, ok := r.agencies[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *agency
	return &copied, nil
}

func (r *fakeAgencyRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	r.mutations++
	agency, ok := r.agencies[id]
	if !ok {
		return pgx.ErrNoRows
	}
	agency.IsVerified = verified
	return nil
}

func (r *fakeAgencyRepo) List(ctx context.Context, verifiedOnly bool) ([]domain.Agency, error) {
	var result []domain.Agency
	for _, agency := range r.agencies {
		if verifiedOnly && !agency.IsVerified {
			continue
		}
		result = append(result, *agency)
	}
	return result, nil
}

// fakeListingRepo keeps listings in memory; floor-plan inserts can be forced
// to fail.
type fakeListingRepo struct {
	listings       map[string]*domain.AgencyListing
	floorPlans     map[string][]domain.FloorPlan
	failFloorPlans bool
	mutations      int
	nextID         int
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{
		listings:   map[string]*domain.AgencyListing{},
		floorPlans: map[string][]domain.FloorPlan{},
	}
}

func (r *fakeListingRepo) Create(ctx context.Context, listing *domain.AgencyListing) error {
	r.mutations++
	r.nextID++
	listing.ID = "listing-" + strconv.Itoa(r.nextID)
	listing.CreatedAt = time.Now()
	listing.UpdatedAt = time.Now()
	stored := *listing
	r.listings[listing.ID] = &stored
	return nil
}

func (r *fakeListingRepo) CreateFloorPlans(ctx context.Context, plans []domain.FloorPlan) error {
	if r.failFloorPlans {
		return errors.New("floor plan batch rejected")
	}
	r.mutations++
	for _, plan := range plans {
		r.floorPlans[plan.ListingID] = append(r.floorPlans[plan.ListingID], plan)
	}
	return nil
}

func (r *fakeListingRepo) FloorPlansByListing(ctx context.Context, listingID string) ([]domain.FloorPlan, error) {
	return r.floorPlans[listingID], nil
}

func (r *fakeListingRepo) ListByAgency(ctx context.Context, agencyID string) ([]domain.AgencyListing, error) {
	var result []domain.AgencyListing
	for _, listing := range r.listings {
		if listing.AgencyID == agencyID {
			result = append(result, *listing)
		}
	}
	return result, nil
}

func (r *fakeListingRepo) List(ctx context.Context) ([]domain.AgencyListing, error) {
	var result []domain.AgencyListing
	for _, listing := range r.listings {
		result = append(result, *listing)
	}
	return result, nil
}

// fakeRequestRepo keeps sublease requests in memory.
type fakeRequestRepo struct {
	requests  map[string]*domain.SubleaseRequest
	mutations int
	nextID    int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: map[string]*domain.SubleaseRequest{}}
}

func (r *fakeRequestRepo) Create(ctx context.Context, request *domain.SubleaseRequest) error {
	r.mutations++
	r.nextID++
	request.ID = "request-" + strconv.Itoa(r.nextID)
	request.CreatedAt = time.Now()
	request.UpdatedAt = time.Now()
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeRequestRepo) Update(ctx context.Context, request *domain.SubleaseRequest) error {
	r.mutations++
	if _, ok := r.requests[request.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *request
	r.requests[request.ID] = &stored
	return nil
}

func (r *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	r.mutations++
	if _, ok := r.requests[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.requests, id)
	return nil
}

func (r *fakeRequestRepo) GetByID(ctx context.Context, id string) (*domain.SubleaseRequest, error) {
	request, ok := r.requests[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *request
	return &copied, nil
}

func (r *fakeRequestRepo) List(ctx context.Context) ([]domain.SubleaseRequest, error) {
	var result []domain.SubleaseRequest
	for _, request := range r.requests {
		result = append(result, *request)
	}
	return result, nil
}

// fakeSender records sends and fails for addresses listed in failOn.
type fakeSender struct {
	sent   []string
	failOn map[string]bool
}

func newFakeSender(failOn ...string) *fakeSender {
	fail := make(map[string]bool, len(failOn))
	for _, address := range failOn {
		fail[address] = true
	}
	return &fakeSender{failOn: fail}
}

func (s *fakeSender) Send(ctx context.Context, from, to, subject, body string) (string, error) {
	if s.failOn[to] {
		return "", errors.New("provider rejected recipient")
	}
	s.sent = append(s.sent, to)
	return fmt.Sprintf("msg-%d", len(s.sent)), nil
}
