package engine

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name           string
		daily          float64
		householdSize  int
		wantPercentile int
	}{
		{"elevated_single_person", 5000, 1, 60},
		{"at_threshold_is_baseline", 4500, 1, 40},
		{"below_threshold", 300, 1, 40},
		{"larger_household_raises_threshold", 5000, 2, 40},
		{"larger_household_still_elevated", 10000, 2, 60},
		{"zero_household_clamped", 5000, 0, 60},
		{"negative_household_clamped", 5000, -2, 60},
		{"zero_usage", 0, 1, 40},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.daily, tc.householdSize)
			if got.Percentile != tc.wantPercentile {
				t.Fatalf("classify(%v, %d): percentile %d, want %d", tc.daily, tc.householdSize, got.Percentile, tc.wantPercentile)
			}
			if got.Message == "" {
				t.Fatalf("classify must always carry a message")
			}
		})
	}
}

func TestClassifyMessagesDiffer(t *testing.T) {
	elevated := classify(5000, 1)
	baseline := classify(300, 1)
	if elevated.Message == baseline.Message {
		t.Fatalf("elevated and baseline classifications must carry distinct messages")
	}
}
