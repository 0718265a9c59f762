package weeklyscore

import "testing"

func TestRoundPoints(t *testing.T) {
	t.Parallel()

	cases := map[float64]float64{
		101.234: 101.23,
		99.996:  100,
		0:       0,
		12.5:    12.5,
	}
	for in, want := range cases {
		if got := RoundPoints(in); got != want {
			t.Fatalf("RoundPoints(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestWeeklyScoreValidate(t *testing.T) {
	t.Parallel()

	if err := (WeeklyScore{TeamID: 1, Week: 3, Season: 2025}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (WeeklyScore{TeamID: 1, Week: 0, Season: 2025}).Validate(); err == nil {
		t.Fatalf("expected error for week 0")
	}
}
