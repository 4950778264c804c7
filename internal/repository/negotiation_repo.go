package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"mandi-backend/internal/models"
)

type NegotiationRepo struct {
	pool *pgxpool.Pool
}

func NewNegotiationRepo(pool *pgxpool.Pool) *NegotiationRepo {
	return &NegotiationRepo{pool: pool}
}

func (r *NegotiationRepo) CreateSession(ctx context.Context, s *models.NegotiationSession) error {
	s.ID = uuid.New()
	s.Status = models.NegotiationOpen

	query := `INSERT INTO negotiation_sessions (id, crop, role, language, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		s.ID, s.Crop, s.Role, s.Language, s.Status,
	).Scan(&s.CreatedAt)
}

func (r *NegotiationRepo) GetSession(ctx context.Context, id uuid.UUID) (*models.NegotiationSession, error) {
	s := &models.NegotiationSession{}
	query := `SELECT id, crop, role, language, status, agreed_price, created_at, completed_at
		FROM negotiation_sessions WHERE id = $1`

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Crop, &s.Role, &s.Language, &s.Status,
		&s.AgreedPrice, &s.CreatedAt, &s.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *NegotiationRepo) AddMessage(ctx context.Context, m *models.NegotiationMessage) error {
	m.ID = uuid.New()

	query := `INSERT INTO negotiation_messages (id, session_id, sender, content)
		VALUES ($1, $2, $3, $4) RETURNING created_at`

	return r.pool.QueryRow(ctx, query,
		m.ID, m.SessionID, m.Sender, m.Content,
	).Scan(&m.CreatedAt)
}

func (r *NegotiationRepo) ListMessages(ctx context.Context, sessionID uuid.UUID) ([]*models.NegotiationMessage, error) {
	query := `SELECT id, session_id, sender, content, created_at
		FROM negotiation_messages WHERE session_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*models.NegotiationMessage
	for rows.Next() {
		m := &models.NegotiationMessage{}
		if err := rows.Scan(&m.ID, &m.SessionID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CompleteSession marks an open session completed at the agreed price.
// Returns ErrNotFound when the session does not exist or is already closed.
func (r *NegotiationRepo) CompleteSession(ctx context.Context, id uuid.UUID, agreedPrice float64) (time.Time, error) {
	query := `UPDATE negotiation_sessions
		SET status = $2, agreed_price = $3, completed_at = NOW()
		WHERE id = $1 AND status = $4
		RETURNING completed_at`

	var completedAt time.Time
	err := r.pool.QueryRow(ctx, query, id, models.NegotiationCompleted, agreedPrice, models.NegotiationOpen).Scan(&completedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return time.Time{}, ErrNotFound
	}
	return completedAt, err
}
