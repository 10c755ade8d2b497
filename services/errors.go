package services

import "errors"

// ErrInvalidRoomCode signals internal misuse: a room code outside the
// catalog-generated set reached the inventory store.
var ErrInvalidRoomCode = errors.New("invalid room code")

type RejectReason string

const (
	ReasonIncompleteForm    RejectReason = "incomplete_form"
	ReasonInvalidDateRange  RejectReason = "invalid_date_range"
	ReasonRoomUnavailable   RejectReason = "room_unavailable"
	ReasonOccupancyExceeded RejectReason = "occupancy_exceeded"
)

// Messages shown to the guest when a candidate is rejected.
const (
	msgIncompleteForm   = "Completa todos los campos obligatorios."
	msgInvalidDateRange = "Check-out debe ser posterior al check-in."
	msgRoomUnavailable  = "La habitación elegida ya no está disponible."
	msgSimpleOccupancy  = "La habitación simple admite 1 huésped recomendado."
	msgMaxOccupancy     = "Máximo 4 huéspedes en este prototipo."
)

// RejectionError is a validation failure on a booking candidate. It never
// propagates past the triggering operation: handlers turn it into a single
// human-readable message and the guest corrects the form and resubmits.
type RejectionError struct {
	Reason  RejectReason
	Message string
}

func (e *RejectionError) Error() string { return e.Message }

func reject(reason RejectReason, msg string) *RejectionError {
	return &RejectionError{Reason: reason, Message: msg}
}

// IsRejection returns the RejectionError wrapped in err, or nil.
func IsRejection(err error) *RejectionError {
	if err == nil {
		return nil
	}

	var rejection *RejectionError

	if errors.As(err, &rejection) {
		return rejection
	}

	return nil
}
