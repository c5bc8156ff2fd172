package catalog

// QuestionType enumerates the supported input widgets.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
	TypeNumeric  QuestionType = "numeric"
	TypeSlider   QuestionType = "slider"
)

// Difficulty grades how hard a suggestion is to adopt.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Option is one selectable answer of a single/multiple question.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DependsOn is a visibility precondition: the question is only eligible for
// presentation when the referenced question has an answer intersecting Values.
type DependsOn struct {
	QuestionID string   `json:"questionId"`
	Values     []string `json:"values"`
}

// Question is one entry of the static question catalog. Immutable after load.
type Question struct {
	ID          string       `json:"id"`
	Category    string       `json:"category"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Options     []Option     `json:"options,omitempty"`
	Min         *float64     `json:"min,omitempty"`
	Max         *float64     `json:"max,omitempty"`
	Step        *float64     `json:"step,omitempty"`
	Unit        string       `json:"unit,omitempty"`
	Required    bool         `json:"required,omitempty"`
	DependsOn   *DependsOn   `json:"dependsOn,omitempty"`
}

// OptionLabel returns the label of the option with the given value, or the
// value itself when the option is unknown.
func (q Question) OptionLabel(value string) string {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// DependsSatisfied reports whether the visibility precondition holds for the
// dependent question's answered values. A question without DependsOn is
// always eligible.
func (q Question) DependsSatisfied(answered []string) bool {
	if q.DependsOn == nil {
		return true
	}
	for _, want := range q.DependsOn.Values {
		for _, got := range answered {
			if want == got {
				return true
			}
		}
	}
	return false
}

// Suggestion is one water-saving recommendation. Priority on catalog data is
// ignored; the engine always recomputes it from impact and feasibility.
type Suggestion struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Impact        float64    `json:"impact"`
	Difficulty    Difficulty `json:"difficulty"`
	Feasibility   float64    `json:"feasibility"`
	Category      string     `json:"category"`
	Priority      float64    `json:"priority"`
	IsChallenge   bool       `json:"isChallenge,omitempty"`
	ChallengeText string     `json:"challengeText,omitempty"`
	IsOtherTip    bool       `json:"isOtherTip,omitempty"`
}
