package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"buyer-quiz/internal/domain"
)

type LeadRepository interface {
	UpsertByEmail(ctx context.Context, lead domain.Lead) (domain.Lead, error)
	GetByID(ctx context.Context, id string) (domain.Lead, error)
	List(ctx context.Context, limit, offset int) ([]domain.Lead, error)
}

type PgLeadRepository struct {
	pool *pgxpool.Pool
}

func NewPgLeadRepository(pool *pgxpool.Pool) *PgLeadRepository {
	return &PgLeadRepository{pool: pool}
}

// UpsertByEmail inserts the lead or refreshes contact fields on a repeat
// submission. The canonical row (existing id and created_at) is returned.
func (r *PgLeadRepository) UpsertByEmail(ctx context.Context, lead domain.Lead) (domain.Lead, error) {
	const query = `
		INSERT INTO leads (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email)
		DO UPDATE SET
			name = EXCLUDED.name,
			phone = EXCLUDED.phone,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.CreatedAt,
		lead.UpdatedAt,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		return domain.Lead{}, err
	}
	return lead, nil
}

func (r *PgLeadRepository) GetByID(ctx context.Context, id string) (domain.Lead, error) {
	const query = `
		SELECT id, name, email, phone, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var lead domain.Lead
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Lead{}, err
	}
	return lead, err
}

func (r *PgLeadRepository) List(ctx context.Context, limit, offset int) ([]domain.Lead, error) {
	const query = `
		SELECT id, name, email, phone, created_at, updated_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []domain.Lead
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Name,
			&lead.Email,
			&lead.Phone,
			&lead.CreatedAt,
			&lead.UpdatedAt,
		); err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leads, nil
}
