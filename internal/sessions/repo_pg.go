package sessions

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BoraOzcoban/sukoc/internal/engine"
)

type PGRepo struct {
	DB *sql.DB
}

const sessionColumns = "id, user_id, answers, completed_at, created_at, updated_at"

func (r *PGRepo) SaveAnswers(ctx context.Context, userID string, answers []engine.Answer) (QuizSession, error) {
	payload, err := json.Marshal(answers)
	if err != nil {
		return QuizSession{}, fmt.Errorf("sessions: marshal answers: %w", err)
	}
	now := time.Now().UTC()

	row := r.DB.QueryRowContext(ctx, `
UPDATE quiz_sessions SET answers = $1, updated_at = $2
WHERE user_id = $3 AND completed_at IS NULL
RETURNING `+sessionColumns, payload, now, userID)
	session, err := scanSession(row)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return QuizSession{}, err
	}

	id := uuid.NewString()
	row = r.DB.QueryRowContext(ctx, `
INSERT INTO quiz_sessions (id, user_id, answers, created_at, updated_at)
VALUES ($1, $2, $3, $4, $4)
RETURNING `+sessionColumns, id, userID, payload, now)
	return scanSession(row)
}

func (r *PGRepo) Complete(ctx context.Context, sessionID string) (QuizSession, error) {
	now := time.Now().UTC()
	row := r.DB.QueryRowContext(ctx, `
UPDATE quiz_sessions SET completed_at = $1, updated_at = $1
WHERE id = $2
RETURNING `+sessionColumns, now, sessionID)
	session, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return QuizSession{}, ErrNotFound
	}
	return session, err
}

func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]QuizSession, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT `+sessionColumns+` FROM quiz_sessions
WHERE user_id = $1
ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *PGRepo) ListCompleted(ctx context.Context) ([]QuizSession, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT `+sessionColumns+` FROM quiz_sessions
WHERE completed_at IS NOT NULL
ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSessions(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (QuizSession, error) {
	var (
		session     QuizSession
		payload     []byte
		completedAt sql.NullTime
	)
	if err := row.Scan(&session.ID, &session.UserID, &payload, &completedAt, &session.CreatedAt, &session.UpdatedAt); err != nil {
		return QuizSession{}, err
	}
	if completedAt.Valid {
		t := completedAt.Time
		session.CompletedAt = &t
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &session.Answers); err != nil {
			return QuizSession{}, fmt.Errorf("sessions: unmarshal answers: %w", err)
		}
	}
	return session, nil
}

func collectSessions(rows *sql.Rows) ([]QuizSession, error) {
	out := make([]QuizSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, session)
	}
	return out, rows.Err()
}
