package engine

import (
	"encoding/json"
	"fmt"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	KindText ValueKind = iota
	KindMultiText
	KindNumeric
)

// Value is the answer payload: a single choice, a set of choices, or a
// number. Estimators switch on Kind instead of coercing strings.
type Value struct {
	Kind  ValueKind
	Text  string
	Texts []string
	Num   float64
}

// TextValue wraps a single-choice value.
func TextValue(s string) Value { return Value{Kind: KindText, Text: s} }

// MultiTextValue wraps a multiple-choice value.
func MultiTextValue(ss []string) Value { return Value{Kind: KindMultiText, Texts: ss} }

// NumericValue wraps a numeric or slider value.
func NumericValue(f float64) Value { return Value{Kind: KindNumeric, Num: f} }

// AsText returns the single-choice value, or "" for other kinds.
func (v Value) AsText() string {
	if v.Kind == KindText {
		return v.Text
	}
	return ""
}

// AsTexts returns the selected values regardless of kind. Numeric values have
// no textual representation and yield nil.
func (v Value) AsTexts() []string {
	switch v.Kind {
	case KindText:
		return []string{v.Text}
	case KindMultiText:
		return v.Texts
	default:
		return nil
	}
}

// AsNumber returns the numeric value, or 0 for textual kinds.
func (v Value) AsNumber() float64 {
	if v.Kind == KindNumeric {
		return v.Num
	}
	return 0
}

// UnmarshalJSON accepts the wire union string | []string | number.
func (v *Value) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = NumericValue(num)
		return nil
	}
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*v = TextValue(text)
		return nil
	}
	var texts []string
	if err := json.Unmarshal(data, &texts); err == nil {
		*v = MultiTextValue(texts)
		return nil
	}
	return fmt.Errorf("engine: answer value must be a string, string array, or number")
}

// MarshalJSON writes the wire union back in its original shape.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindNumeric:
		return json.Marshal(v.Num)
	case KindMultiText:
		return json.Marshal(v.Texts)
	default:
		return json.Marshal(v.Text)
	}
}

// Answer is one questionnaire answer.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
	Category   string `json:"category"`
}

// AnswerMap keys answers by question id; one answer per question.
type AnswerMap map[string]Answer

// NewAnswerMap folds a list of answers into a map. Re-answering a question
// overwrites the earlier entry: last write wins, never duplicates.
func NewAnswerMap(answers []Answer) AnswerMap {
	m := make(AnswerMap, len(answers))
	for _, a := range answers {
		if a.QuestionID == "" {
			continue
		}
		m[a.QuestionID] = a
	}
	return m
}

func (m AnswerMap) text(questionID string) (string, bool) {
	a, ok := m[questionID]
	if !ok || a.Value.Kind != KindText {
		return "", false
	}
	return a.Value.Text, true
}

func (m AnswerMap) numeric(questionID string) (float64, bool) {
	a, ok := m[questionID]
	if !ok || a.Value.Kind != KindNumeric {
		return 0, false
	}
	return a.Value.Num, true
}
