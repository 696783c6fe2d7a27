package pricing

import (
	"strings"
	"testing"
)

func TestParseRejectsIncompleteTables(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "not yaml",
			yaml:    "{{{{",
			wantErr: "parse rate table",
		},
		{
			name:    "missing group rate",
			yaml:    "rooms:\n  - id: A\n    weekday: {EP: 1, CP: 1, MAP: 1, AP: 1}\n    weekend: {EP: 1, CP: 1, MAP: 1, AP: 1}\n",
			wantErr: "groupRate",
		},
		{
			name:    "no rooms",
			yaml:    "groupRate: 100\nrooms: []\n",
			wantErr: "no rooms",
		},
		{
			name:    "room missing a meal plan",
			yaml:    "groupRate: 100\nrooms:\n  - id: A\n    weekday: {EP: 1, CP: 1, MAP: 1}\n    weekend: {EP: 1, CP: 1, MAP: 1, AP: 1}\n",
			wantErr: "missing AP rate",
		},
		{
			name:    "room without id",
			yaml:    "groupRate: 100\nrooms:\n  - weekday: {EP: 1, CP: 1, MAP: 1, AP: 1}\n    weekend: {EP: 1, CP: 1, MAP: 1, AP: 1}\n",
			wantErr: "empty id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse() error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedTableIsComplete(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	if _, ok := table.Room("Deluxe Garden"); !ok {
		t.Error("embedded table missing the Deluxe Garden room")
	}
	if table.GroupRate <= 0 {
		t.Error("embedded table has no group rate")
	}
	for _, r := range table.Rooms {
		// The unknown-plan fallback assumes EP is the cheapest plan.
		for _, plan := range []MealPlan{PlanCP, PlanMAP, PlanAP} {
			if r.Weekday[PlanEP] > r.Weekday[plan] || r.Weekend[PlanEP] > r.Weekend[plan] {
				t.Errorf("room %q: EP is not the cheapest plan (vs %s)", r.ID, plan)
			}
		}
		if r.Weekend[PlanEP] <= r.Weekday[PlanEP] {
			t.Errorf("room %q weekend EP rate %d not above weekday %d", r.ID, r.Weekend[PlanEP], r.Weekday[PlanEP])
		}
	}
}
