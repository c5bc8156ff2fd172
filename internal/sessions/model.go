package sessions

import (
	"time"

	"github.com/BoraOzcoban/sukoc/internal/engine"
)

// QuizSession is one user's questionnaire run. A user has at most one open
// session; saving answers again replaces the open session's answer set.
type QuizSession struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Answers     []engine.Answer `json:"answers"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
