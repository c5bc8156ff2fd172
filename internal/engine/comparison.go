package engine

// Daily liters per person above which usage is classified as elevated.
const elevatedDailyPerPerson = 4500

const (
	elevatedMessage = "Su ayak iziniz Türkiye ortalamasının üzerinde. Benzer büyüklükteki haneler günde kişi başı ortalama 4.500 litrenin altında kalıyor."
	baselineMessage = "Su ayak iziniz Türkiye ortalaması civarında veya altında. Kişi başı günlük 4.500 litrelik referans değerin içindesiniz."
)

// classify buckets total daily usage against a fixed per-person threshold.
// The message cites reference averages; it is not computed from population
// data.
func classify(dailyUsage float64, householdSize int) Comparison {
	if householdSize < 1 {
		householdSize = 1
	}
	if dailyUsage > float64(householdSize)*elevatedDailyPerPerson {
		return Comparison{Message: elevatedMessage, Percentile: 60}
	}
	return Comparison{Message: baselineMessage, Percentile: 40}
}
