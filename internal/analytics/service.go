package analytics

import (
	"context"
	"math"
	"sort"

	"github.com/BoraOzcoban/sukoc/internal/engine"
	"github.com/BoraOzcoban/sukoc/internal/sessions"
)

// SessionSource is the slice of the session store the aggregator needs.
type SessionSource interface {
	ListCompleted(ctx context.Context) ([]sessions.QuizSession, error)
}

const topSuggestionLimit = 5

// Regional reference values for Turkey, liters per person per day. These are
// static survey figures, not derived from stored sessions.
var regionalData = []RegionalUsage{
	{Region: "marmara", AverageUsage: 145.2, UserCount: 342},
	{Region: "ege", AverageUsage: 138.7, UserCount: 298},
	{Region: "akdeniz", AverageUsage: 142.1, UserCount: 267},
	{Region: "ic-anadolu", AverageUsage: 151.3, UserCount: 189},
	{Region: "karadeniz", AverageUsage: 139.8, UserCount: 156},
	{Region: "dogu-anadolu", AverageUsage: 148.9, UserCount: 98},
	{Region: "guneydogu-anadolu", AverageUsage: 153.2, UserCount: 97},
}

// Service recomputes aggregate analytics from completed sessions on demand.
type Service struct {
	Sessions SessionSource
	Calc     *engine.Calculator
}

// Report replays every completed session through the calculator and
// aggregates the results. Suggestion counts are ranked descending, ties
// broken by id for a stable order.
func (s *Service) Report(ctx context.Context) (Report, error) {
	completed, err := s.Sessions.ListCompleted(ctx)
	if err != nil {
		return Report{}, err
	}

	users := make(map[string]bool)
	counts := make(map[string]int)
	titles := make(map[string]string)
	var savingsSum float64

	for _, session := range completed {
		users[session.UserID] = true
		result := s.Calc.Calculate(engine.NewAnswerMap(session.Answers), 1)
		savingsSum += result.PotentialDailySavings
		for _, sug := range result.Suggestions {
			counts[sug.ID]++
			titles[sug.ID] = sug.Title
		}
	}

	var average float64
	if len(completed) > 0 {
		average = math.Round(savingsSum/float64(len(completed))*100) / 100
	}

	top := make([]TopSuggestion, 0, len(counts))
	for id, count := range counts {
		top = append(top, TopSuggestion{ID: id, Title: titles[id], UsageCount: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].UsageCount != top[j].UsageCount {
			return top[i].UsageCount > top[j].UsageCount
		}
		return top[i].ID < top[j].ID
	})
	if len(top) > topSuggestionLimit {
		top = top[:topSuggestionLimit]
	}

	return Report{
		TotalUsers:     len(users),
		AverageSavings: average,
		TopSuggestions: top,
		RegionalData:   regionalData,
	}, nil
}
