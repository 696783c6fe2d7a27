package pricing

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func testTable(t *testing.T) *RateTable {
	t.Helper()
	table, err := Load("")
	if err != nil {
		t.Fatalf("load embedded rate table: %v", err)
	}
	return table
}

func TestCalculateWeekdayStay(t *testing.T) {
	table := testTable(t)

	// Mon 2025-01-06 through Thu 2025-01-09: three weekday nights.
	quote, err := table.Calculate(Request{
		CheckIn:  "2025-01-06",
		CheckOut: "2025-01-09",
		RoomType: "Deluxe Garden",
		MealPlan: "EP",
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if quote.Nights != 3 {
		t.Errorf("Nights = %d, want 3", quote.Nights)
	}
	if quote.Total != 5100 {
		t.Errorf("Total = %d, want 5100", quote.Total)
	}
	if quote.RoomType != "Deluxe Garden" {
		t.Errorf("RoomType = %q, want %q", quote.RoomType, "Deluxe Garden")
	}
	wantDates := []string{"2025-01-06", "2025-01-07", "2025-01-08"}
	for i, n := range quote.Breakdown {
		if n.IsWeekend {
			t.Errorf("Breakdown[%d].IsWeekend = true, want false", i)
		}
		if n.Rate != 1700 {
			t.Errorf("Breakdown[%d].Rate = %d, want 1700", i, n.Rate)
		}
		if n.Date != wantDates[i] {
			t.Errorf("Breakdown[%d].Date = %q, want %q", i, n.Date, wantDates[i])
		}
	}
}

func TestCalculateWeekendStay(t *testing.T) {
	table := testTable(t)

	// Fri 2025-01-10 is the first designated weekend day; Fri and Sat
	// nights both take the weekend rate.
	quote, err := table.Calculate(Request{
		CheckIn:  "2025-01-10",
		CheckOut: "2025-01-12",
		RoomType: "Deluxe Garden",
		MealPlan: "EP",
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if quote.Total != 4400 {
		t.Errorf("Total = %d, want 4400", quote.Total)
	}
	if quote.Nights != 2 {
		t.Errorf("Nights = %d, want 2", quote.Nights)
	}
	for i, n := range quote.Breakdown {
		if !n.IsWeekend {
			t.Errorf("Breakdown[%d].IsWeekend = false, want true", i)
		}
		if n.Rate != 2200 {
			t.Errorf("Breakdown[%d].Rate = %d, want 2200", i, n.Rate)
		}
	}
}

func TestCalculateGroupBooking(t *testing.T) {
	table := testTable(t)

	quote, err := table.Calculate(Request{
		CheckIn:        "2025-01-06",
		CheckOut:       "2025-01-08",
		RoomType:       "this room does not exist",
		IsGroupBooking: true,
	})
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}

	if want := 2 * table.GroupRate; quote.Total != want {
		t.Errorf("Total = %d, want %d", quote.Total, want)
	}
	if quote.RoomType != GroupLabel {
		t.Errorf("RoomType = %q, want %q", quote.RoomType, GroupLabel)
	}
	for i, n := range quote.Breakdown {
		if n.Rate != table.GroupRate {
			t.Errorf("Breakdown[%d].Rate = %d, want %d", i, n.Rate, table.GroupRate)
		}
	}
}

func TestCalculateErrors(t *testing.T) {
	table := testTable(t)

	tests := []struct {
		name    string
		req     Request
		wantErr error
	}{
		{
			name:    "same day",
			req:     Request{CheckIn: "2025-01-06", CheckOut: "2025-01-06", RoomType: "Deluxe Garden"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "check-out before check-in",
			req:     Request{CheckIn: "2025-01-06", CheckOut: "2025-01-05", RoomType: "Deluxe Garden"},
			wantErr: ErrInvalidRange,
		},
		{
			name:    "malformed check-in",
			req:     Request{CheckIn: "06/01/2025", CheckOut: "2025-01-09", RoomType: "Deluxe Garden"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "impossible calendar date",
			req:     Request{CheckIn: "2025-02-30", CheckOut: "2025-03-02", RoomType: "Deluxe Garden"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "unknown room",
			req:     Request{CheckIn: "2025-01-06", CheckOut: "2025-01-09", RoomType: "Presidential"},
			wantErr: ErrUnknownRoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote, err := table.Calculate(tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Calculate() error = %v, want %v", err, tt.wantErr)
			}
			if quote != nil {
				t.Errorf("Calculate() returned a quote alongside an error")
			}
		})
	}
}

func TestCalculateMealPlanFallback(t *testing.T) {
	table := testTable(t)

	req := Request{
		CheckIn:  "2025-01-06",
		CheckOut: "2025-01-07",
		RoomType: "Deluxe Garden",
		MealPlan: "ALL_INCLUSIVE_DELUXE",
	}
	quote, err := table.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if quote.MealPlan != string(PlanEP) {
		t.Errorf("MealPlan = %q, want fallback %q", quote.MealPlan, PlanEP)
	}
	if quote.Total != 1700 {
		t.Errorf("Total = %d, want EP rate 1700", quote.Total)
	}
}

func TestCalculateIsPure(t *testing.T) {
	table := testTable(t)

	req := Request{
		CheckIn:  "2025-01-03",
		CheckOut: "2025-01-13",
		RoomType: "Family Suite",
		MealPlan: "MAP",
	}
	first, err := table.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	second, err := table.Calculate(req)
	if err != nil {
		t.Fatalf("Calculate() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different quotes:\n%+v\n%+v", first, second)
	}

	var sum int64
	for _, n := range first.Breakdown {
		sum += n.Rate
	}
	if sum != first.Total {
		t.Errorf("Total = %d, sum of breakdown = %d", first.Total, sum)
	}
	if first.Nights != len(first.Breakdown) || first.Nights != 10 {
		t.Errorf("Nights = %d, len(Breakdown) = %d, want 10", first.Nights, len(first.Breakdown))
	}
}

func TestIsWeekend(t *testing.T) {
	// Week of 2025-01-05 (Sunday) through 2025-01-11 (Saturday).
	tests := []struct {
		date string
		want bool
	}{
		{"2025-01-05", false}, // Sunday
		{"2025-01-06", false}, // Monday
		{"2025-01-07", false}, // Tuesday
		{"2025-01-08", false}, // Wednesday
		{"2025-01-09", false}, // Thursday
		{"2025-01-10", true},  // Friday
		{"2025-01-11", true},  // Saturday
	}

	for _, tt := range tests {
		d, err := time.Parse(DateLayout, tt.date)
		if err != nil {
			t.Fatalf("parse %q: %v", tt.date, err)
		}
		if got := IsWeekend(d); got != tt.want {
			t.Errorf("IsWeekend(%s %s) = %v, want %v", tt.date, d.Weekday(), got, tt.want)
		}
	}
}

func TestNormalizePlan(t *testing.T) {
	tests := []struct {
		code string
		want MealPlan
	}{
		{"EP", PlanEP},
		{"CP", PlanCP},
		{"MAP", PlanMAP},
		{"AP", PlanAP},
		{"", PlanEP},
		{"ep", PlanEP},
		{"bogus", PlanEP},
	}
	for _, tt := range tests {
		if got := NormalizePlan(tt.code); got != tt.want {
			t.Errorf("NormalizePlan(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
