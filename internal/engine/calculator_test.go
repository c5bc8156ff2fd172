package engine

import (
	"math"
	"testing"

	"github.com/BoraOzcoban/sukoc/internal/catalog"
)

func mustCalculator(t *testing.T) *Calculator {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	return New(cat)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func answer(questionID string, v Value) Answer {
	return Answer{QuestionID: questionID, Value: v}
}

func TestCalculateEmptyAnswersBaseline(t *testing.T) {
	calc := mustCalculator(t)

	result := calc.Calculate(AnswerMap{}, 1)

	if result.CurrentDailyUsage != 0 {
		t.Fatalf("expected zero daily usage for empty answers, got %v", result.CurrentDailyUsage)
	}
	if result.CurrentYearlyUsage != result.CurrentDailyUsage*365 {
		t.Fatalf("yearly usage must be daily*365")
	}
	if len(result.CategoryBreakdown) != 0 {
		t.Fatalf("expected empty category breakdown, got %v", result.CategoryBreakdown)
	}
	if len(result.LifestyleBreakdown) != 0 {
		t.Fatalf("expected empty lifestyle breakdown, got %v", result.LifestyleBreakdown)
	}
	// Only the always-active general category contributes suggestions.
	for _, s := range result.Suggestions {
		if s.Category != "general" {
			t.Fatalf("expected only general suggestions for empty answers, got %s", s.Category)
		}
	}
	if len(result.Suggestions) == 0 {
		t.Fatalf("expected general suggestions even with no answers")
	}
}

func TestCalculateShowerSignal(t *testing.T) {
	calc := mustCalculator(t)

	// 70 weekly minutes, flow intensity unanswered: defaults to full flow.
	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, NumericValue(70)),
	})
	result := calc.Calculate(answers, 1)

	if !almostEqual(result.CurrentDailyUsage, 140) {
		t.Fatalf("expected 140 L/day for 70 weekly shower minutes, got %v", result.CurrentDailyUsage)
	}
	if !almostEqual(result.CategoryBreakdown[CategoryHygiene], 140) {
		t.Fatalf("expected hygiene breakdown 140, got %v", result.CategoryBreakdown[CategoryHygiene])
	}
}

func TestCalculateShowerFlowMultiplierTiers(t *testing.T) {
	calc := mustCalculator(t)

	cases := []struct {
		flow  string
		daily float64
	}{
		{"low", 70 * 14 * 0.5 / 7},
		{"medium", 70 * 14 * 0.75 / 7},
		{"high", 140},
	}
	for _, tc := range cases {
		t.Run(tc.flow, func(t *testing.T) {
			answers := NewAnswerMap([]Answer{
				answer(QShowerMinutes, NumericValue(70)),
				answer(QShowerFlow, TextValue(tc.flow)),
			})
			result := calc.Calculate(answers, 1)
			if !almostEqual(result.CurrentDailyUsage, tc.daily) {
				t.Fatalf("flow %s: expected %v L/day, got %v", tc.flow, tc.daily, result.CurrentDailyUsage)
			}
		})
	}
}

func TestCalculateFaucetFlowScalesHygieneOnly(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, NumericValue(70)),           // 980 weekly
		answer(QFaucetClosure, TextValue("never_closes")),  // +300 weekly
		answer(QFaucetFlow, TextValue("low")),              // hygiene subtotal halved
		answer(QDishwashing, TextValue("hand_open_tap")),   // kitchen 700 weekly
	})
	result := calc.Calculate(answers, 1)

	wantHygiene := (980.0 + 300.0) * 0.5 / 7
	if !almostEqual(result.CategoryBreakdown[CategoryHygiene], wantHygiene) {
		t.Fatalf("expected hygiene %v, got %v", wantHygiene, result.CategoryBreakdown[CategoryHygiene])
	}
	if !almostEqual(result.CategoryBreakdown[CategoryKitchen], 100) {
		t.Fatalf("faucet flow multiplier must not touch kitchen; got %v", result.CategoryBreakdown[CategoryKitchen])
	}
	if !almostEqual(result.CurrentDailyUsage, wantHygiene+100) {
		t.Fatalf("expected total %v, got %v", wantHygiene+100, result.CurrentDailyUsage)
	}
}

func TestCalculateHygienePresentWithZeroAfterScale(t *testing.T) {
	calc := mustCalculator(t)

	// Only the faucet flow multiplier answered: the hygiene accumulator was
	// scaled, so the key is present even though the subtotal is zero.
	answers := NewAnswerMap([]Answer{
		answer(QFaucetFlow, TextValue("low")),
	})
	result := calc.Calculate(answers, 1)

	got, present := result.CategoryBreakdown[CategoryHygiene]
	if !present {
		t.Fatalf("expected hygiene key present after multiplier")
	}
	if got != 0 {
		t.Fatalf("expected zero hygiene subtotal, got %v", got)
	}
}

func TestCalculateLifestyleParallelBreakdowns(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QRedMeat, TextValue("1_2")),
	})
	result := calc.Calculate(answers, 1)

	want := 25000.0 / 7
	if !almostEqual(result.LifestyleBreakdown[LifestyleRedMeat], want) {
		t.Fatalf("expected red_meat %v, got %v", want, result.LifestyleBreakdown[LifestyleRedMeat])
	}
	if !almostEqual(result.CategoryBreakdown[CategoryLifestyle], want) {
		t.Fatalf("expected lifestyle category %v, got %v", want, result.CategoryBreakdown[CategoryLifestyle])
	}
}

func TestCalculateGardenAddOnsAccumulate(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QGardenMinutes, NumericValue(60)), // 1020 weekly
		answer(QGardenStyle, TextValue("lawn")),  // +500
		answer(QIrrigation, TextValue("hose")),   // +700
		answer(QPool, TextValue("none")),         // +0
	})
	result := calc.Calculate(answers, 1)

	want := (60*17 + 500 + 700 + 0) / 7.0
	if !almostEqual(result.CategoryBreakdown[CategoryGarden], want) {
		t.Fatalf("expected garden %v, got %v", want, result.CategoryBreakdown[CategoryGarden])
	}
}

func TestCalculateGardenZeroMinutesContributesNothing(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QGardenMinutes, NumericValue(0)),
	})
	result := calc.Calculate(answers, 1)

	if _, present := result.CategoryBreakdown[CategoryGarden]; present {
		t.Fatalf("zero watering minutes must not populate the garden breakdown")
	}
}

func TestCalculateFullScenarioTotal(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, NumericValue(140)),
		answer(QShowerFlow, TextValue("medium")),
		answer(QFaucetClosure, TextValue("sometimes_closes")),
		answer(QFaucetFlow, TextValue("medium")),
		answer(QDishwashing, TextValue("dishwasher_standard")),
		answer(QFruitVeg, TextValue("tap_low_flow")),
		answer(QLaundry, TextValue("3_4")),
		answer(QToiletFlush, TextValue("4_6")),
		answer(QGardenStyle, TextValue("mixed_beds")),
		answer(QGardenMinutes, NumericValue(60)),
		answer(QIrrigation, TextValue("drip")),
		answer(QPool, TextValue("none")),
		answer(QRedMeat, TextValue("under_1")),
		answer(QDairy, TextValue("low")),
	})
	result := calc.Calculate(answers, 3)

	hygiene := (140*14*0.75 + 150) * 0.75
	kitchen := 150.0 + 90
	garden := 300.0 + 60*17 + 100
	lifestyle := 10000.0 + 3500
	wantWeekly := hygiene + kitchen + 100 + 210 + garden + lifestyle

	if !almostEqual(result.CurrentDailyUsage, wantWeekly/7) {
		t.Fatalf("expected %v L/day, got %v", wantWeekly/7, result.CurrentDailyUsage)
	}
	if result.CurrentYearlyUsage != result.CurrentDailyUsage*365 {
		t.Fatalf("yearly usage must be daily*365")
	}
	if result.PotentialYearlySavings != result.PotentialDailySavings*365 {
		t.Fatalf("yearly savings must be daily*365")
	}
}

func TestCalculateHouseholdSizeDoesNotScaleUsage(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, NumericValue(70)),
		answer(QDishwashing, TextValue("hand_open_tap")),
		answer(QRedMeat, TextValue("1_2")),
	})

	one := calc.Calculate(answers, 1)
	four := calc.Calculate(answers, 4)

	if one.CurrentDailyUsage != four.CurrentDailyUsage {
		t.Fatalf("weekly constants are whole-household totals; daily usage must not depend on household size (1: %v, 4: %v)",
			one.CurrentDailyUsage, four.CurrentDailyUsage)
	}
}

func TestCalculateClampsHouseholdSize(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, NumericValue(70)),
	})

	zero := calc.Calculate(answers, 0)
	negative := calc.Calculate(answers, -3)
	one := calc.Calculate(answers, 1)

	if zero.Comparison != one.Comparison || negative.Comparison != one.Comparison {
		t.Fatalf("household size below 1 must behave as 1")
	}
	if zero.CurrentDailyUsage < 0 || negative.CurrentDailyUsage < 0 {
		t.Fatalf("daily usage must never be negative")
	}
}

func TestCalculateReAnswerOverwrites(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QDishwashing, TextValue("hand_open_tap")),
		answer(QDishwashing, TextValue("dishwasher_eco")),
	})
	result := calc.Calculate(answers, 1)

	want := 50.0 / 7
	if !almostEqual(result.CategoryBreakdown[CategoryKitchen], want) {
		t.Fatalf("last answer must win: expected %v, got %v", want, result.CategoryBreakdown[CategoryKitchen])
	}
}

func TestCalculateIgnoresMalformedValues(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer(QShowerMinutes, TextValue("seventy")),  // numeric signal, wrong kind
		answer(QDishwashing, NumericValue(3)),         // categorical signal, wrong kind
		answer(QFruitVeg, TextValue("unknown_method")), // unknown categorical value
	})
	result := calc.Calculate(answers, 1)

	if result.CurrentDailyUsage != 0 {
		t.Fatalf("malformed answers must fall back to zero, got %v", result.CurrentDailyUsage)
	}
}

func TestCalculateUnknownQuestionIgnored(t *testing.T) {
	calc := mustCalculator(t)

	answers := NewAnswerMap([]Answer{
		answer("question_from_the_future", TextValue("whatever")),
	})
	result := calc.Calculate(answers, 1)

	if result.CurrentDailyUsage != 0 {
		t.Fatalf("unknown question ids must contribute nothing, got %v", result.CurrentDailyUsage)
	}
}
