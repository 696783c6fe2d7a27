package pricing

import (
	"errors"
	"fmt"
	"time"
)

// DateLayout is the calendar-date wire format for check-in and check-out
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrInvalidRange = errors.New("check-out must be after check-in")
	ErrUnknownRoom  = errors.New("unknown room type")
)

// Request carries the inputs for one price computation
type Request struct {
	CheckIn        string
	CheckOut       string
	RoomType       string
	MealPlan       string
	IsGroupBooking bool
}

// Night is one entry of a price breakdown
type Night struct {
	Date      string `json:"date"`
	IsWeekend bool   `json:"isWeekend"`
	Rate      int64  `json:"rate"`
}

// Quote is a complete price computation result
type Quote struct {
	RoomType  string  `json:"roomType"`
	MealPlan  string  `json:"mealPlan"`
	Nights    int     `json:"nights"`
	Total     int64   `json:"total"`
	Breakdown []Night `json:"breakdown"`
}

// IsWeekend reports whether d is a premium night. The resort prices the
// last two days of its Sunday-start business week, Friday and Saturday,
// as weekend nights.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Friday || wd == time.Saturday
}

// Calculate walks every night from check-in (inclusive) to check-out
// (exclusive) and sums nightly rates. It is pure: identical inputs always
// produce the identical quote, and a quote is never partial on error.
// Group bookings use the flat group rate and ignore the room selector.
func (t *RateTable) Calculate(req Request) (*Quote, error) {
	checkIn, err := time.Parse(DateLayout, req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.CheckIn)
	}
	checkOut, err := time.Parse(DateLayout, req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.CheckOut)
	}
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidRange
	}

	plan := NormalizePlan(req.MealPlan)
	label := GroupLabel
	var room *RoomRate
	if !req.IsGroupBooking {
		r, ok := t.Room(req.RoomType)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, req.RoomType)
		}
		room = r
		label = r.ID
	}

	quote := &Quote{
		RoomType: label,
		MealPlan: string(plan),
	}
	for d := checkIn; d.Before(checkOut); d = d.AddDate(0, 0, 1) {
		weekend := IsWeekend(d)
		rate := t.GroupRate
		if room != nil {
			rate = room.Rate(weekend, plan)
		}
		quote.Breakdown = append(quote.Breakdown, Night{
			Date:      d.Format(DateLayout),
			IsWeekend: weekend,
			Rate:      rate,
		})
		quote.Total += rate
	}
	quote.Nights = len(quote.Breakdown)
	return quote, nil
}
