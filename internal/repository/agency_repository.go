package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// AgencyRepository manages agency persistence.
type AgencyRepository interface {
	Create(ctx context.Context, agency *domain.Agency) error
	Update(ctx context.Context, id string, update domain.AgencyUpdate) (*domain.Agency, error)
	GetByID(ctx context.Context, id string) (*domain.Agency, error)
	SetVerified(ctx context.Context, id string, verified bool) error
	List(ctx context.Context, verifiedOnly bool) ([]domain.Agency, error)
}

type agencyRepository struct {
	pool *pgxpool.Pool
}

// NewAgencyRepository builds the repository.
func NewAgencyRepository(pool *pgxpool.Pool) AgencyRepository {
	return &agencyRepository{pool: pool}
}

// Create inserts the agency. is_verified is always false at creation; the
// column default applies regardless of the incoming struct.
func (r *agencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	const query = `
        INSERT INTO agencies (user_id, name, location, logo_url, description)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, is_verified, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		agency.UserID,
		agency.Name,
		agency.Location,
		agency.LogoURL,
		agency.Description,
	).Scan(&agency.ID, &agency.IsVerified, &agency.CreatedAt, &agency.UpdatedAt)
}

func (r *agencyRepository) Update(ctx context.Context, id string, update domain.AgencyUpdate) (*domain.Agency, error) {
	const query = `
        UPDATE agencies SET name=$1, location=$2, logo_url=$3, description=$4, updated_at=NOW()
        WHERE id=$5
        RETURNING id, user_id, name, location, logo_url, description, is_verified, created_at, updated_at`

	var agency domain.Agency
	if err := r.pool.QueryRow(ctx, query,
		update.Name,
		update.Location,
		update.LogoURL,
		update.Description,
		id,
	).Scan(
		&agency.ID,
		&agency.UserID,
		&agency.Name,
		&agency.Location,
		&agency.LogoURL,
		&agency.Description,
		&agency.IsVerified,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *agencyRepository) GetByID(ctx context.Context, id string) (*domain.Agency, error) {
	const query = `
        SELECT id, user_id, name, location, logo_url, description, is_verified, created_at, updated_at
        FROM agencies WHERE id=$1`

	var agency domain.Agency
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&agency.ID,
		&agency.UserID,
		&agency.Name,
		&agency.Location,
		&agency.LogoURL,
		&agency.Description,
		&agency.IsVerified,
		&agency.CreatedAt,
		&agency.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *agencyRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	const query = `
        UPDATE agencies SET is_verified=$1, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, verified, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *agencyRepository) List(ctx context.Context, verifiedOnly bool) ([]domain.Agency, error) {
	query := `
        SELECT id, user_id, name, location, logo_url, description, is_verified, created_at, updated_at
        FROM agencies`
	if verifiedOnly {
		query += ` WHERE is_verified = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Agency
	for rows.Next() {
		var agency domain.Agency
		if err := rows.Scan(
			&agency.ID,
			&agency.UserID,
			&agency.Name,
			&agency.Location,
			&agency.LogoURL,
			&agency.Description,
			&agency.IsVerified,
			&agency.CreatedAt,
			&agency.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, agency)
	}
	return result, rows.Err()
}
