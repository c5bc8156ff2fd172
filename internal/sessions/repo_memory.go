package sessions

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/BoraOzcoban/sukoc/internal/engine"
)

type MemoryRepo struct {
	mu       sync.RWMutex
	sessions map[string]QuizSession
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{sessions: make(map[string]QuizSession)}
}

func (r *MemoryRepo) SaveAnswers(ctx context.Context, userID string, answers []engine.Answer) (QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return QuizSession{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	for id, session := range r.sessions {
		if session.UserID == userID && session.CompletedAt == nil {
			session.Answers = cloneAnswers(answers)
			session.UpdatedAt = now
			r.sessions[id] = session
			return session, nil
		}
	}

	session := QuizSession{
		ID:        uuid.NewString(),
		UserID:    userID,
		Answers:   cloneAnswers(answers),
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.sessions[session.ID] = session
	return session, nil
}

func (r *MemoryRepo) Complete(ctx context.Context, sessionID string) (QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return QuizSession{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return QuizSession{}, ErrNotFound
	}
	now := time.Now().UTC()
	session.CompletedAt = &now
	session.UpdatedAt = now
	r.sessions[sessionID] = session
	return session, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]QuizSession, 0)
	for _, session := range r.sessions {
		if session.UserID == userID {
			out = append(out, session)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) ListCompleted(ctx context.Context) ([]QuizSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]QuizSession, 0)
	for _, session := range r.sessions {
		if session.CompletedAt != nil {
			out = append(out, session)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func cloneAnswers(answers []engine.Answer) []engine.Answer {
	out := make([]engine.Answer, len(answers))
	copy(out, answers)
	return out
}
