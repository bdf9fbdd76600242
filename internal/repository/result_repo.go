package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"buyer-quiz/internal/domain"
)

type ResultRepository interface {
	Insert(ctx context.Context, result domain.QuizResult) error
	FindByLeadID(ctx context.Context, leadID string) ([]domain.QuizResult, error)
}

type PgResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgResultRepository(pool *pgxpool.Pool) *PgResultRepository {
	return &PgResultRepository{pool: pool}
}

func (r *PgResultRepository) Insert(ctx context.Context, result domain.QuizResult) error {
	const query = `
		INSERT INTO quiz_results (
			id, lead_id,
			openness, conscientiousness, extraversion, agreeableness, risk_aversion,
			type_code, type_confidence, archetype, inconsistencies, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.LeadID,
		result.Openness,
		result.Conscientious,
		result.Extraversion,
		result.Agreeableness,
		result.RiskAversion,
		result.TypeCode,
		result.TypeConfidence,
		result.Archetype,
		result.Inconsistencies,
		result.CreatedAt,
	)
	return err
}

func (r *PgResultRepository) FindByLeadID(ctx context.Context, leadID string) ([]domain.QuizResult, error) {
	const query = `
		SELECT id, lead_id,
			openness, conscientiousness, extraversion, agreeableness, risk_aversion,
			type_code, type_confidence, archetype, inconsistencies, created_at
		FROM quiz_results
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.QuizResult
	for rows.Next() {
		var res domain.QuizResult
		if err := rows.Scan(
			&res.ID,
			&res.LeadID,
			&res.Openness,
			&res.Conscientious,
			&res.Extraversion,
			&res.Agreeableness,
			&res.RiskAversion,
			&res.TypeCode,
			&res.TypeConfidence,
			&res.Archetype,
			&res.Inconsistencies,
			&res.CreatedAt,
		); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
