package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// ListingRepository manages agency listings and their floor plans.
type ListingRepository interface {
	Create(ctx context.Context, listing *domain.AgencyListing) error
	CreateFloorPlans(ctx context.Context, plans []domain.FloorPlan) error
	FloorPlansByListing(ctx context.Context, listingID string) ([]domain.FloorPlan, error)
	ListByAgency(ctx context.Context, agencyID string) ([]domain.AgencyListing, error)
	List(ctx context.Context) ([]domain.AgencyListing, error)
}

type listingRepository struct {
	pool *pgxpool.Pool
}

// NewListingRepository builds the repository.
func NewListingRepository(pool *pgxpool.Pool) ListingRepository {
	return &listingRepository{pool: pool}
}

func (r *listingRepository) Create(ctx context.Context, listing *domain.AgencyListing) error {
	const query = `
        INSERT INTO agency_listings (agency_id, title, address, description, image_url, available_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		listing.AgencyID,
		listing.Title,
		listing.Address,
		listing.Description,
		listing.ImageURL,
		listing.AvailableAt,
	).Scan(&listing.ID, &listing.CreatedAt, &listing.UpdatedAt)
}

// CreateFloorPlans inserts the batch in one round trip. Failure here leaves
// the parent listing untouched; the caller decides how to report it.
func (r *listingRepository) CreateFloorPlans(ctx context.Context, plans []domain.FloorPlan) error {
	if len(plans) == 0 {
		return nil
	}

	const query = `
        INSERT INTO floor_plans (id, listing_id, name, bedrooms, bathrooms, rent, sq_ft, image_url)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	batch := &pgx.Batch{}
	for _, plan := range plans {
		batch.Queue(query,
			plan.ID,
			plan.ListingID,
			plan.Name,
			plan.Bedrooms,
			plan.Bathrooms,
			plan.Rent,
			plan.SqFt,
			plan.ImageURL,
		)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range plans {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *listingRepository) FloorPlansByListing(ctx context.Context, listingID string) ([]domain.FloorPlan, error) {
	const query = `
        SELECT id, listing_id, name, bedrooms, bathrooms, rent, sq_ft, image_url, created_at
        FROM floor_plans WHERE listing_id=$1 ORDER BY rent`

	rows, err := r.pool.Query(ctx, query, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanFloorPlans(rows)
}

func (r *listingRepository) ListByAgency(ctx context.Context, agencyID string) ([]domain.AgencyListing, error) {
	const query = `
        SELECT id, agency_id, title, address, description, image_url, available_at, created_at, updated_at
        FROM agency_listings WHERE agency_id=$1 ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

func (r *listingRepository) List(ctx context.Context) ([]domain.AgencyListing, error) {
	const query = `
        SELECT id, agency_id, title, address, description, image_url, available_at, created_at, updated_at
        FROM agency_listings ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanListings(rows)
}

func scanListings(rows pgx.Rows) ([]domain.AgencyListing, error) {
	var result []domain.AgencyListing
	for rows.Next() {
		var listing domain.AgencyListing
		if err := rows.Scan(
			&listing.ID,
			&listing.AgencyID,
			&listing.Title,
			&listing.Address,
			&listing.Description,
			&listing.ImageURL,
			&listing.AvailableAt,
			&listing.CreatedAt,
			&listing.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, listing)
	}
	return result, rows.Err()
}

func scanFloorPlans(rows pgx.Rows) ([]domain.FloorPlan, error) {
	var result []domain.FloorPlan
	for rows.Next() {
		var plan domain.FloorPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.ListingID,
			&plan.Name,
			&plan.Bedrooms,
			&plan.Bathrooms,
			&plan.Rent,
			&plan.SqFt,
			&plan.ImageURL,
			&plan.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, plan)
	}
	return result, rows.Err()
}
