package engine

// Question ids recognized by the estimators.
const (
	QShowerMinutes = "weekly_shower_total_minutes"
	QShowerFlow    = "shower_flow_intensity"
	QFaucetClosure = "faucet_closure_habit"
	QFaucetFlow    = "faucet_flow_intensity"
	QDishwashing   = "dishwashing_method"
	QFruitVeg      = "fruit_vegetable_washing"
	QLaundry       = "weekly_laundry_count"
	QToiletFlush   = "daily_flush_count"
	QGardenStyle   = "garden_style"
	QGardenMinutes = "weekly_garden_watering_minutes"
	QIrrigation    = "irrigation_practice"
	QPool          = "pool_or_hot_tub"
	QRedMeat       = "weekly_red_meat_kg"
	QDairy         = "weekly_dairy_consumption"
	QClothing      = "clothing_purchases"
	QWhiteMeat     = "weekly_white_meat_kg"
	QCarWash       = "car_wash_frequency"
	QElectronics   = "electronics_shopping"
)

// Usage breakdown categories.
const (
	CategoryHygiene   = "hygiene"
	CategoryKitchen   = "kitchen"
	CategoryLaundry   = "laundry"
	CategoryToilet    = "toilet"
	CategoryGarden    = "garden"
	CategoryLifestyle = "lifestyle"
)

// Lifestyle breakdown subcategories.
const (
	LifestyleRedMeat     = "red_meat"
	LifestyleDairy       = "dairy"
	LifestyleClothing    = "clothing"
	LifestyleWhiteMeat   = "white_meat"
	LifestyleCarWash     = "car_wash"
	LifestyleElectronics = "electronics"
)

const (
	showerLitersPerMinute = 14
	gardenLitersPerMinute = 17
	daysPerWeek           = 7

	// Synthesized next-best-option suggestions carry a fixed feasibility.
	nextBestFeasibility = 0.85
)

// flowIntensityMultiplier scales a flow-dependent signal. Unanswered defaults
// to the "high" tier, i.e. no reduction.
var flowIntensityMultiplier = map[string]float64{
	"low":    0.5,
	"medium": 0.75,
	"high":   1.0,
}

func flowMultiplier(value string) float64 {
	if m, ok := flowIntensityMultiplier[value]; ok {
		return m
	}
	return 1.0
}

// All tables below are weekly liters for the whole household.

var faucetClosureWeekly = map[string]float64{
	"never_closes":     300,
	"sometimes_closes": 150,
	"closes":           0,
}

var dishwashingWeekly = map[string]float64{
	"dishwasher_eco":      50,
	"dishwasher_standard": 150,
	"hand_basin":          300,
	"hand_open_tap":       700,
}

var fruitVegWeekly = map[string]float64{
	"bowl":         28,
	"tap_low_flow": 90,
	"tap_open":     200,
}

var laundryWeekly = map[string]float64{
	"1_2":    50,
	"3_4":    100,
	"5_plus": 150,
}

var toiletWeekly = map[string]float64{
	"1_3":     84,
	"4_6":     210,
	"7_9":     336,
	"10_plus": 462,
}

var gardenStyleWeekly = map[string]float64{
	"none":             0,
	"native_low_water": 100,
	"mixed_beds":       300,
	"lawn":             500,
}

var irrigationWeekly = map[string]float64{
	"none":      0,
	"drip":      100,
	"sprinkler": 400,
	"hose":      700,
}

var poolWeekly = map[string]float64{
	"none":             0,
	"hot_tub":          250,
	"pool":             500,
	"pool_and_hot_tub": 700,
}

var redMeatWeekly = map[string]float64{
	"none":    0,
	"under_1": 10000,
	"1_2":     25000,
	"over_3":  50000,
}

var dairyWeekly = map[string]float64{
	"none":   0,
	"low":    3500,
	"medium": 7000,
	"high":   14000,
}

var clothingWeekly = map[string]float64{
	"rarely":   1000,
	"seasonal": 3500,
	"monthly":  7000,
}

var whiteMeatWeekly = map[string]float64{
	"none":    0,
	"under_1": 3000,
	"1_2":     6500,
	"over_3":  13000,
}

var carWashWeekly = map[string]float64{
	"never":   0,
	"monthly": 40,
	"weekly":  150,
	"more":    300,
}

var electronicsWeekly = map[string]float64{
	"rarely":  200,
	"yearly":  500,
	"monthly": 1500,
}

// weeklyLiters resolves a categorical answer value against its table. Unknown
// values fall back to the stated default instead of failing.
func weeklyLiters(table map[string]float64, value string, def float64) float64 {
	if v, ok := table[value]; ok {
		return v
	}
	return def
}

// activation links an answered question to the suggestion category it can
// activate and the usage category whose breakdown gates the activation.
type activation struct {
	suggestionCategory string
	usageCategory      string
}

var questionActivation = map[string]activation{
	QShowerMinutes: {"daily_hygiene", CategoryHygiene},
	QShowerFlow:    {"daily_hygiene", CategoryHygiene},
	QFaucetClosure: {"daily_hygiene", CategoryHygiene},
	QFaucetFlow:    {"daily_hygiene", CategoryHygiene},
	QDishwashing:   {"kitchen", CategoryKitchen},
	QFruitVeg:      {"kitchen", CategoryKitchen},
	QLaundry:       {"laundry", CategoryLaundry},
	QToiletFlush:   {"bathroom", CategoryToilet},
	QGardenStyle:   {"garden", CategoryGarden},
	QGardenMinutes: {"garden", CategoryGarden},
	QIrrigation:    {"garden", CategoryGarden},
	QPool:          {"garden", CategoryGarden},
	QRedMeat:       {"lifestyle", CategoryLifestyle},
	QDairy:         {"lifestyle", CategoryLifestyle},
	QClothing:      {"lifestyle", CategoryLifestyle},
	QWhiteMeat:     {"lifestyle", CategoryLifestyle},
	QCarWash:       {"lifestyle", CategoryLifestyle},
	QElectronics:   {"lifestyle", CategoryLifestyle},
}

// optionWeeklyTables maps single-choice questions to their per-option weekly
// tables, used for next-best-option synthesis. The shower flow question is
// handled separately because its signal is multiplicative; the faucet flow
// question is deliberately absent (it is a secondary multiplier, not an
// independent behavior change).
var optionWeeklyTables = map[string]map[string]float64{
	QFaucetClosure: faucetClosureWeekly,
	QDishwashing:   dishwashingWeekly,
	QFruitVeg:      fruitVegWeekly,
	QLaundry:       laundryWeekly,
	QToiletFlush:   toiletWeekly,
	QGardenStyle:   gardenStyleWeekly,
	QIrrigation:    irrigationWeekly,
	QPool:          poolWeekly,
	QRedMeat:       redMeatWeekly,
	QDairy:         dairyWeekly,
	QClothing:      clothingWeekly,
	QWhiteMeat:     whiteMeatWeekly,
	QCarWash:       carWashWeekly,
	QElectronics:   electronicsWeekly,
}
