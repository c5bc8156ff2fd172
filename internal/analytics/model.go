package analytics

// TopSuggestion counts how often one suggestion was surfaced across completed
// questionnaire runs.
type TopSuggestion struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	UsageCount int    `json:"usageCount"`
}

// RegionalUsage is static reference data for one region.
type RegionalUsage struct {
	Region       string  `json:"region"`
	AverageUsage float64 `json:"averageUsage"`
	UserCount    int     `json:"userCount"`
}

// Report aggregates usage across all completed sessions.
type Report struct {
	TotalUsers     int             `json:"totalUsers"`
	AverageSavings float64         `json:"averageSavings"`
	TopSuggestions []TopSuggestion `json:"topSuggestions"`
	RegionalData   []RegionalUsage `json:"regionalData"`
}
