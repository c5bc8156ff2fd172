package engine

import (
	"github.com/BoraOzcoban/sukoc/internal/catalog"
)

// Calculator estimates household water usage from survey answers and derives
// ranked saving suggestions. It holds immutable references to the two
// catalogs and is safe for concurrent use: every call works on its own
// accumulators and returns a fresh result.
type Calculator struct {
	catalog *catalog.Catalog
}

// New constructs a Calculator over validated catalogs.
func New(cat *catalog.Catalog) *Calculator {
	return &Calculator{catalog: cat}
}

// Catalog exposes the underlying question catalog for collaborators.
func (c *Calculator) Catalog() *catalog.Catalog {
	return c.catalog
}

// weeklyTotals accumulates weekly liters per usage category. Division by 7
// happens once at the end, never per signal, so multipliers always apply to
// weekly quantities.
type weeklyTotals struct {
	categories map[string]float64
	touched    map[string]bool
	lifestyle  map[string]float64
}

func newWeeklyTotals() *weeklyTotals {
	return &weeklyTotals{
		categories: make(map[string]float64),
		touched:    make(map[string]bool),
		lifestyle:  make(map[string]float64),
	}
}

func (w *weeklyTotals) add(category string, liters float64) {
	w.categories[category] += liters
	w.touched[category] = true
}

// scale multiplies the running subtotal of one category. The category stays
// present in the breakdown even when the subtotal is zero.
func (w *weeklyTotals) scale(category string, factor float64) {
	w.categories[category] *= factor
	w.touched[category] = true
}

// addLifestyle records a lifestyle signal both in the aggregate lifestyle
// category and in its named sub-entry. The two breakdowns are maintained in
// parallel from the same value.
func (w *weeklyTotals) addLifestyle(sub string, liters float64) {
	w.add(CategoryLifestyle, liters)
	w.lifestyle[sub] += liters
}

func (w *weeklyTotals) total() float64 {
	var sum float64
	for _, v := range w.categories {
		sum += v
	}
	return sum
}

// Calculate maps an answer snapshot to a usage analysis. Missing or
// malformed answers never fail: every lookup has a documented fallback.
// Household sizes below 1 are clamped to 1.
func (c *Calculator) Calculate(answers AnswerMap, householdSize int) Analysis {
	if householdSize < 1 {
		householdSize = 1
	}

	weekly := newWeeklyTotals()

	// Hygiene. The shower signal is multiplicative: weekly minutes scaled by
	// the flow intensity tier (unanswered means full flow). The faucet flow
	// multiplier applies to the hygiene subtotal accumulated so far, not to
	// other categories.
	if minutes, ok := answers.numeric(QShowerMinutes); ok {
		flow, _ := answers.text(QShowerFlow)
		weekly.add(CategoryHygiene, minutes*showerLitersPerMinute*flowMultiplier(flow))
	}
	if habit, ok := answers.text(QFaucetClosure); ok {
		weekly.add(CategoryHygiene, weeklyLiters(faucetClosureWeekly, habit, 0))
	}
	if flow, ok := answers.text(QFaucetFlow); ok {
		weekly.scale(CategoryHygiene, flowMultiplier(flow))
	}

	// Kitchen.
	if method, ok := answers.text(QDishwashing); ok {
		weekly.add(CategoryKitchen, weeklyLiters(dishwashingWeekly, method, 0))
	}
	if method, ok := answers.text(QFruitVeg); ok {
		weekly.add(CategoryKitchen, weeklyLiters(fruitVegWeekly, method, 0))
	}

	// Laundry and toilet, both already expressed as weekly totals.
	if count, ok := answers.text(QLaundry); ok {
		weekly.add(CategoryLaundry, weeklyLiters(laundryWeekly, count, 0))
	}
	if count, ok := answers.text(QToiletFlush); ok {
		weekly.add(CategoryToilet, weeklyLiters(toiletWeekly, count, 0))
	}

	// Garden. Watering contributes only when minutes are positive; style,
	// irrigation practice and pool are independent add-ons that accumulate.
	if minutes, ok := answers.numeric(QGardenMinutes); ok && minutes > 0 {
		weekly.add(CategoryGarden, minutes*gardenLitersPerMinute)
	}
	if style, ok := answers.text(QGardenStyle); ok {
		weekly.add(CategoryGarden, weeklyLiters(gardenStyleWeekly, style, 0))
	}
	if practice, ok := answers.text(QIrrigation); ok {
		weekly.add(CategoryGarden, weeklyLiters(irrigationWeekly, practice, 0))
	}
	if pool, ok := answers.text(QPool); ok {
		weekly.add(CategoryGarden, weeklyLiters(poolWeekly, pool, 0))
	}

	// Lifestyle: virtual water signals, each mirrored into a named sub-entry.
	lifestyleSignals := []struct {
		questionID string
		sub        string
		table      map[string]float64
	}{
		{QRedMeat, LifestyleRedMeat, redMeatWeekly},
		{QDairy, LifestyleDairy, dairyWeekly},
		{QClothing, LifestyleClothing, clothingWeekly},
		{QWhiteMeat, LifestyleWhiteMeat, whiteMeatWeekly},
		{QCarWash, LifestyleCarWash, carWashWeekly},
		{QElectronics, LifestyleElectronics, electronicsWeekly},
	}
	for _, sig := range lifestyleSignals {
		if value, ok := answers.text(sig.questionID); ok {
			weekly.addLifestyle(sig.sub, weeklyLiters(sig.table, value, 0))
		}
	}

	daily := weekly.total() / daysPerWeek
	if daily < 0 {
		daily = 0
	}

	categoryBreakdown := make(map[string]float64, len(weekly.categories))
	for category := range weekly.touched {
		categoryBreakdown[category] = weekly.categories[category] / daysPerWeek
	}
	lifestyleBreakdown := make(map[string]float64, len(weekly.lifestyle))
	for sub, liters := range weekly.lifestyle {
		lifestyleBreakdown[sub] = liters / daysPerWeek
	}

	suggestions := c.selectSuggestions(answers, categoryBreakdown)

	var potential float64
	for _, s := range suggestions {
		potential += s.Impact
	}

	return Analysis{
		CurrentDailyUsage:      daily,
		CurrentYearlyUsage:     daily * 365,
		PotentialDailySavings:  potential,
		PotentialYearlySavings: potential * 365,
		Suggestions:            suggestions,
		Comparison:             classify(daily, householdSize),
		CategoryBreakdown:      categoryBreakdown,
		LifestyleBreakdown:     lifestyleBreakdown,
	}
}
