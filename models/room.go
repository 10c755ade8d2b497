package models

type RoomState string

const (
	RoomFree RoomState = "free"
	RoomBusy RoomState = "busy"
)

// RoomStatus maps every room code in the catalog to its current state.
// Its key set is always exactly the catalog-generated code set.
type RoomStatus map[string]RoomState

// Room is the API view of a single room for the availability grid.
type Room struct {
	Code   string    `json:"code"`
	Type   string    `json:"type"`
	Label  string    `json:"label"`
	Status RoomState `json:"status"`
}
