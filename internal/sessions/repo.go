package sessions

import (
	"context"

	"github.com/BoraOzcoban/sukoc/internal/engine"
)

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "quiz session not found" }

type Repo interface {
	// SaveAnswers stores the answers on the user's open session, creating
	// one if none exists.
	SaveAnswers(ctx context.Context, userID string, answers []engine.Answer) (QuizSession, error)
	// Complete stamps the session as finished.
	Complete(ctx context.Context, sessionID string) (QuizSession, error)
	// ListByUser returns the user's sessions, newest first.
	ListByUser(ctx context.Context, userID string) ([]QuizSession, error)
	// ListCompleted returns every completed session.
	ListCompleted(ctx context.Context) ([]QuizSession, error)
}
