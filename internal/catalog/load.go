package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
)

//go:embed data/questions.json data/suggestions.json
var dataFiles embed.FS

// Load parses and validates the embedded question and suggestion catalogs.
func Load() (*Catalog, error) {
	questionBytes, err := dataFiles.ReadFile("data/questions.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: read questions: %w", err)
	}
	var questions []Question
	if err := json.Unmarshal(questionBytes, &questions); err != nil {
		return nil, fmt.Errorf("catalog: parse questions: %w", err)
	}

	suggestionBytes, err := dataFiles.ReadFile("data/suggestions.json")
	if err != nil {
		return nil, fmt.Errorf("catalog: read suggestions: %w", err)
	}
	var suggestions map[string][]Suggestion
	if err := json.Unmarshal(suggestionBytes, &suggestions); err != nil {
		return nil, fmt.Errorf("catalog: parse suggestions: %w", err)
	}

	return New(questions, suggestions)
}
