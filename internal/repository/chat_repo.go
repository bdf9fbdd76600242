package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"buyer-quiz/internal/domain"
)

type ChatRepository interface {
	Insert(ctx context.Context, msg domain.ChatMessage) error
	FindByVisitorID(ctx context.Context, visitorID string, limit int) ([]domain.ChatMessage, error)
}

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) Insert(ctx context.Context, msg domain.ChatMessage) error {
	const query = `
		INSERT INTO chat_messages (id, visitor_id, role, skill, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		msg.ID,
		msg.VisitorID,
		msg.Role,
		msg.Skill,
		msg.Content,
		msg.CreatedAt,
	)
	return err
}

func (r *PgChatRepository) FindByVisitorID(ctx context.Context, visitorID string, limit int) ([]domain.ChatMessage, error) {
	const query = `
		SELECT id, visitor_id, role, skill, content, created_at
		FROM chat_messages
		WHERE visitor_id = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, visitorID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(
			&m.ID,
			&m.VisitorID,
			&m.Role,
			&m.Skill,
			&m.Content,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return msgs, nil
}
