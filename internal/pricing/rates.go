package pricing

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MealPlan codes follow the Indian hotel convention: EP room only, CP with
// breakfast, MAP breakfast plus one major meal, AP all meals.
type MealPlan string

const (
	PlanEP  MealPlan = "EP"
	PlanCP  MealPlan = "CP"
	PlanMAP MealPlan = "MAP"
	PlanAP  MealPlan = "AP"
)

// DefaultPlan is the fallback for unrecognized meal-plan codes.
const DefaultPlan = PlanEP

// GroupLabel is the room designation used for full-property bookings.
const GroupLabel = "Full Property (Group)"

var plans = []MealPlan{PlanEP, PlanCP, PlanMAP, PlanAP}

// NormalizePlan maps an arbitrary code onto the closed meal-plan set,
// falling back to the cheapest plan rather than erroring.
func NormalizePlan(code string) MealPlan {
	for _, p := range plans {
		if string(p) == code {
			return p
		}
	}
	return DefaultPlan
}

// RoomRate holds the nightly prices for one room across meal plans
type RoomRate struct {
	ID       string             `yaml:"id"`
	Capacity int                `yaml:"capacity"`
	Weekday  map[MealPlan]int64 `yaml:"weekday"`
	Weekend  map[MealPlan]int64 `yaml:"weekend"`
}

// Rate returns the nightly rate for the given day class and plan
func (r *RoomRate) Rate(weekend bool, plan MealPlan) int64 {
	if weekend {
		return r.Weekend[plan]
	}
	return r.Weekday[plan]
}

// RateTable is the static pricing configuration loaded at startup
type RateTable struct {
	GroupRate int64      `yaml:"groupRate"`
	Rooms     []RoomRate `yaml:"rooms"`

	byID map[string]*RoomRate
}

//go:embed rates.yaml
var defaultRates []byte

// Load reads a rate table from the given YAML file, or the embedded
// default table when path is empty.
func Load(path string) (*RateTable, error) {
	data := defaultRates
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read rate table: %w", err)
		}
		data = b
	}
	return Parse(data)
}

// Parse decodes and validates a YAML rate table
func Parse(data []byte) (*RateTable, error) {
	t := &RateTable{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	t.byID = make(map[string]*RoomRate, len(t.Rooms))
	for i := range t.Rooms {
		t.byID[t.Rooms[i].ID] = &t.Rooms[i]
	}
	return t, nil
}

func (t *RateTable) validate() error {
	if t.GroupRate <= 0 {
		return fmt.Errorf("rate table: groupRate must be positive")
	}
	if len(t.Rooms) == 0 {
		return fmt.Errorf("rate table: no rooms defined")
	}
	for _, r := range t.Rooms {
		if r.ID == "" {
			return fmt.Errorf("rate table: room with empty id")
		}
		for _, p := range plans {
			if r.Weekday[p] <= 0 || r.Weekend[p] <= 0 {
				return fmt.Errorf("rate table: room %q missing %s rate", r.ID, p)
			}
		}
	}
	return nil
}

// Room looks up a room by identifier
func (t *RateTable) Room(id string) (*RoomRate, bool) {
	r, ok := t.byID[id]
	return r, ok
}
