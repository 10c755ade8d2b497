package models

// RoomTypeDef describes one class of rooms in the catalog: the prefix its
// room codes share, how many rooms exist, the nightly rate and the guest cap.
type RoomTypeDef struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	CodePrefix  string  `json:"codePrefix"`
	Count       int     `json:"count"`
	NightlyRate float64 `json:"nightlyRate"`
	MaxGuests   int     `json:"maxGuests"`
}
