package models

import "time"

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a room or full-property reservation.
// TotalAmount and Nights are always computed server-side from the rate
// table, never taken from the client.
type Booking struct {
	ID             string        `json:"id"`
	GuestName      string        `json:"guestName"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	CheckIn        string        `json:"checkIn"`
	CheckOut       string        `json:"checkOut"`
	RoomType       string        `json:"roomType"`
	MealPlan       string        `json:"mealPlan"`
	IsGroupBooking bool          `json:"isGroupBooking"`
	Guests         int           `json:"guests"`
	Nights         int           `json:"nights"`
	TotalAmount    int64         `json:"totalAmount"`
	Status         BookingStatus `json:"status"`
	Notes          string        `json:"notes,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
	UpdatedBy      string        `json:"updatedBy,omitempty"`
}
