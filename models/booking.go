package models

import "time"

// Booking is a confirmed reservation. Immutable once appended to the ledger.
// Check-in/check-out travel as YYYY-MM-DD strings, same as the persisted form.
type Booking struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"createdAt"`
	Name          string    `json:"name"`
	Doc           string    `json:"doc"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Guests        int       `json:"guests"`
	CheckIn       string    `json:"checkin"`
	CheckOut      string    `json:"checkout"`
	Nights        int       `json:"nights"`
	RoomType      string    `json:"roomType"`
	RoomTypeLabel string    `json:"roomTypeLabel"`
	RoomCode      string    `json:"roomCode"`
	Rate          float64   `json:"rate"`
	Total         float64   `json:"total"`
	Deposit       float64   `json:"deposit"`
	Notes         string    `json:"notes,omitempty"`
}

// BookingRequest is the candidate a guest submits for preview or confirmation.
// Required-field checks happen in the validator, not at binding time, so that
// an incomplete form surfaces as a single rejection message.
type BookingRequest struct {
	Name     string `json:"name"`
	Doc      string `json:"doc"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Guests   int    `json:"guests"`
	CheckIn  string `json:"checkin"`
	CheckOut string `json:"checkout"`
	RoomType string `json:"roomType"`
	RoomCode string `json:"roomCode"`
	Notes    string `json:"notes"`
}
