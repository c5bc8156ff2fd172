package catalog

import (
	"fmt"
)

// Catalog holds the question catalog and the suggestion catalog. Both are
// static configuration: validated once at construction and read-only after.
type Catalog struct {
	questions   []Question
	byID        map[string]int
	suggestions map[string][]Suggestion
}

// New validates the given catalogs and wraps them. Structurally malformed
// data fails here, at load time, not during calculation.
func New(questions []Question, suggestions map[string][]Suggestion) (*Catalog, error) {
	byID := make(map[string]int, len(questions))
	for i, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("catalog: question %d has empty id", i)
		}
		if _, dup := byID[q.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %q", q.ID)
		}
		if q.Category == "" {
			return nil, fmt.Errorf("catalog: question %q has empty category", q.ID)
		}
		switch q.Type {
		case TypeSingle, TypeMultiple:
			if len(q.Options) == 0 {
				return nil, fmt.Errorf("catalog: question %q of type %s has no options", q.ID, q.Type)
			}
		case TypeNumeric, TypeSlider:
		default:
			return nil, fmt.Errorf("catalog: question %q has unknown type %q", q.ID, q.Type)
		}
		byID[q.ID] = i
	}
	for _, q := range questions {
		if q.DependsOn == nil {
			continue
		}
		if _, ok := byID[q.DependsOn.QuestionID]; !ok {
			return nil, fmt.Errorf("catalog: question %q depends on unknown question %q", q.ID, q.DependsOn.QuestionID)
		}
		if len(q.DependsOn.Values) == 0 {
			return nil, fmt.Errorf("catalog: question %q has dependsOn with no values", q.ID)
		}
	}

	seenSuggestions := make(map[string]string)
	for category, list := range suggestions {
		for _, s := range list {
			if s.ID == "" {
				return nil, fmt.Errorf("catalog: suggestion with empty id in category %q", category)
			}
			if prev, dup := seenSuggestions[s.ID]; dup {
				return nil, fmt.Errorf("catalog: suggestion id %q appears in both %q and %q", s.ID, prev, category)
			}
			seenSuggestions[s.ID] = category
			if s.Feasibility < 0 || s.Feasibility > 1 {
				return nil, fmt.Errorf("catalog: suggestion %q feasibility %v outside [0,1]", s.ID, s.Feasibility)
			}
			if s.Impact < 0 {
				return nil, fmt.Errorf("catalog: suggestion %q has negative impact", s.ID)
			}
			switch s.Difficulty {
			case DifficultyEasy, DifficultyMedium, DifficultyHard:
			default:
				return nil, fmt.Errorf("catalog: suggestion %q has unknown difficulty %q", s.ID, s.Difficulty)
			}
		}
	}

	return &Catalog{questions: questions, byID: byID, suggestions: suggestions}, nil
}

// Questions returns all questions in catalog order.
func (c *Catalog) Questions() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// QuestionsByCategory returns the questions of one category in catalog order.
func (c *Catalog) QuestionsByCategory(category string) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// QuestionByID looks up a single question. The second return reports
// presence; absence is not an error.
func (c *Catalog) QuestionByID(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Suggestions returns the whole suggestion catalog keyed by category.
func (c *Catalog) Suggestions() map[string][]Suggestion {
	out := make(map[string][]Suggestion, len(c.suggestions))
	for category, list := range c.suggestions {
		cp := make([]Suggestion, len(list))
		copy(cp, list)
		out[category] = cp
	}
	return out
}

// SuggestionsByCategory returns copies of one category's suggestions. The
// second return reports whether the category exists.
func (c *Catalog) SuggestionsByCategory(category string) ([]Suggestion, bool) {
	list, ok := c.suggestions[category]
	if !ok {
		return nil, false
	}
	out := make([]Suggestion, len(list))
	copy(out, list)
	return out, true
}
