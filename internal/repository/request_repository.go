package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/sublease-service/internal/domain"
)

// RequestRepository manages tenant-authored sublease requests.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.SubleaseRequest) error
	Update(ctx context.Context, request *domain.SubleaseRequest) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.SubleaseRequest, error)
	List(ctx context.Context) ([]domain.SubleaseRequest, error)
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository builds the repository.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

func (r *requestRepository) Create(ctx context.Context, request *domain.SubleaseRequest) error {
	const query = `
        INSERT INTO sublease_requests (user_id, title, description, budget, move_in, move_out)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		request.UserID,
		request.Title,
		request.Description,
		request.Budget,
		request.MoveIn,
		request.MoveOut,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *requestRepository) Update(ctx context.Context, request *domain.SubleaseRequest) error {
	const query = `
        UPDATE sublease_requests
        SET title=$1, description=$2, budget=$3, move_in=$4, move_out=$5, updated_at=NOW()
        WHERE id=$6`

	cmd, err := r.pool.Exec(ctx, query,
		request.Title,
		request.Description,
		request.Budget,
		request.MoveIn,
		request.MoveOut,
		request.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *requestRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM sublease_requests WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *requestRepository) GetByID(ctx context.Context, id string) (*domain.SubleaseRequest, error) {
	const query = `
        SELECT id, user_id, title, description, budget, move_in, move_out, created_at, updated_at
        FROM sublease_requests WHERE id=$1`

	var request domain.SubleaseRequest
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&request.ID,
		&request.UserID,
		&request.Title,
		&request.Description,
		&request.Budget,
		&request.MoveIn,
		&request.MoveOut,
		&request.CreatedAt,
		&request.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) List(ctx context.Context) ([]domain.SubleaseRequest, error) {
	const query = `
        SELECT id, user_id, title, description, budget, move_in, move_out, created_at, updated_at
        FROM sublease_requests ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SubleaseRequest
	for rows.Next() {
		var request domain.SubleaseRequest
		if err := rows.Scan(
			&request.ID,
			&request.UserID,
			&request.Title,
			&request.Description,
			&request.Budget,
			&request.MoveIn,
			&request.MoveOut,
			&request.CreatedAt,
			&request.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, request)
	}
	return result, rows.Err()
}
