package engine

import "github.com/BoraOzcoban/sukoc/internal/catalog"

// Comparison classifies the household against a fixed reference threshold.
type Comparison struct {
	Message    string `json:"message"`
	Percentile int    `json:"percentile,omitempty"`
}

// Analysis is the result of one calculation. It is recomputed on every call
// and never persisted by the engine; the caller owns display and storage.
type Analysis struct {
	CurrentDailyUsage      float64              `json:"currentDailyUsage"`
	CurrentYearlyUsage     float64              `json:"currentYearlyUsage"`
	PotentialDailySavings  float64              `json:"potentialDailySavings"`
	PotentialYearlySavings float64              `json:"potentialYearlySavings"`
	Suggestions            []catalog.Suggestion `json:"suggestions"`
	Comparison             Comparison           `json:"comparison"`
	CategoryBreakdown      map[string]float64   `json:"categoryBreakdown"`
	LifestyleBreakdown     map[string]float64   `json:"lifestyleBreakdown"`
}
