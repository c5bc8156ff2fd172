package sessions

import (
	"context"

	"github.com/BoraOzcoban/sukoc/internal/engine"
)

var ErrNoValidAnswers = errNoValidAnswers{}

type errNoValidAnswers struct{}

func (errNoValidAnswers) Error() string { return "no valid answers provided" }

// Service validates incoming answers and delegates storage to a Repo.
type Service struct {
	Repo Repo
}

// SaveAnswers filters out structurally invalid answers and stores the rest on
// the user's open session. At least one valid answer is required.
func (s *Service) SaveAnswers(ctx context.Context, userID string, answers []engine.Answer) (QuizSession, error) {
	valid := make([]engine.Answer, 0, len(answers))
	for _, a := range answers {
		if a.QuestionID == "" || a.Category == "" {
			continue
		}
		valid = append(valid, a)
	}
	if len(valid) == 0 {
		return QuizSession{}, ErrNoValidAnswers
	}
	return s.Repo.SaveAnswers(ctx, userID, valid)
}

// Complete stamps a session as finished.
func (s *Service) Complete(ctx context.Context, sessionID string) (QuizSession, error) {
	return s.Repo.Complete(ctx, sessionID)
}

// History returns the user's sessions, newest first.
func (s *Service) History(ctx context.Context, userID string) ([]QuizSession, error) {
	return s.Repo.ListByUser(ctx, userID)
}
