package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/BoraOzcoban/sukoc/internal/catalog"
)

// selectSuggestions derives the ranked suggestion list: catalog suggestions
// from activated categories plus synthesized next-best-option switches,
// priority recomputed for every entry, stable-sorted by descending priority
// so equal priorities keep insertion order.
func (c *Calculator) selectSuggestions(answers AnswerMap, breakdown map[string]float64) []catalog.Suggestion {
	active := []string{"general"}
	seen := map[string]bool{"general": true}

	// Walk questions in catalog order so activation (and with it suggestion
	// insertion order) is deterministic.
	for _, q := range c.catalog.Questions() {
		if _, answered := answers[q.ID]; !answered {
			continue
		}
		act, known := questionActivation[q.ID]
		if !known || seen[act.suggestionCategory] {
			continue
		}
		if breakdown[act.usageCategory] > 0 {
			active = append(active, act.suggestionCategory)
			seen[act.suggestionCategory] = true
		}
	}

	var suggestions []catalog.Suggestion
	for _, category := range active {
		list, ok := c.catalog.SuggestionsByCategory(category)
		if !ok {
			continue
		}
		for _, s := range list {
			s.Priority = round2(s.Impact * s.Feasibility)
			suggestions = append(suggestions, s)
		}
	}

	suggestions = append(suggestions, c.nextBestOptions(answers)...)

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Priority > suggestions[j].Priority
	})
	return suggestions
}

// nextBestOptions synthesizes one "switch to the next cheaper option"
// suggestion per eligible single-choice answer. A suggestion is emitted only
// when the computed daily saving is strictly positive.
func (c *Calculator) nextBestOptions(answers AnswerMap) []catalog.Suggestion {
	var out []catalog.Suggestion
	for _, q := range c.catalog.Questions() {
		if q.Type != catalog.TypeSingle {
			continue
		}
		if q.ID == QFaucetFlow {
			// Secondary multiplier, not an independent behavior change.
			continue
		}
		current, ok := answers.text(q.ID)
		if !ok {
			continue
		}

		table, known := optionWeeklyTables[q.ID]
		if q.ID == QShowerFlow {
			// Multiplicative signal: rank options against the base shower
			// quantity scaled by each tier, not a flat table.
			minutes, _ := answers.numeric(QShowerMinutes)
			base := minutes * showerLitersPerMinute
			table = map[string]float64{}
			for value, mult := range flowIntensityMultiplier {
				table[value] = base * mult
			}
			known = true
		}
		if !known {
			continue
		}

		currentWeekly, nextWeekly, nextValue, found := nextCheaperOption(q, table, current)
		if !found {
			continue
		}
		impact := (currentWeekly - nextWeekly) / daysPerWeek
		if impact <= 0 {
			continue
		}

		act := questionActivation[q.ID]
		out = append(out, catalog.Suggestion{
			ID:          "best_option_" + q.ID,
			Title:       fmt.Sprintf("Daha tasarruflu seçenek: %s", q.OptionLabel(nextValue)),
			Description: fmt.Sprintf("\"%s\" sorusunda %q yerine %q tercih ederek günde yaklaşık %.1f litre tasarruf edebilirsiniz.", q.Title, q.OptionLabel(current), q.OptionLabel(nextValue), impact),
			Impact:      impact,
			Difficulty:  catalog.DifficultyEasy,
			Feasibility: nextBestFeasibility,
			Category:    act.suggestionCategory,
			Priority:    round2(impact * nextBestFeasibility),
		})
	}
	return out
}

// nextCheaperOption ranks the question's options by weekly liters descending
// and returns the option adjacent below the current choice, if any option is
// strictly cheaper.
func nextCheaperOption(q catalog.Question, table map[string]float64, current string) (currentWeekly, nextWeekly float64, nextValue string, found bool) {
	type ranked struct {
		value  string
		liters float64
	}
	options := make([]ranked, 0, len(q.Options))
	for _, opt := range q.Options {
		liters, ok := table[opt.Value]
		if !ok {
			continue
		}
		options = append(options, ranked{value: opt.Value, liters: liters})
	}
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].liters > options[j].liters
	})

	for i, opt := range options {
		if opt.value != current {
			continue
		}
		for _, candidate := range options[i+1:] {
			if candidate.liters < opt.liters {
				return opt.liters, candidate.liters, candidate.value, true
			}
		}
		return 0, 0, "", false
	}
	return 0, 0, "", false
}

// round2 rounds to two decimal places; the invariant for every suggestion is
// priority == round2(impact * feasibility).
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
