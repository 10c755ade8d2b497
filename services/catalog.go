package services

import (
	"fmt"
	"strings"

	"github.com/dkim1999m/hospedaje-reservas/models"
)

// Catalog is the static room-type table. It is defined once at startup and
// immutable for the process lifetime. Prefixes must not overlap; the seeded
// set ("S", "D", "P") satisfies that by construction.
type Catalog struct {
	types []models.RoomTypeDef
	codes map[string]struct{}
}

// DefaultCatalog returns the property's room types.
func DefaultCatalog() *Catalog {
	return NewCatalog([]models.RoomTypeDef{
		{Key: "simple", Label: "Simple", CodePrefix: "S", Count: 8, NightlyRate: 60, MaxGuests: 1},
		{Key: "doble", Label: "Doble (2 camas)", CodePrefix: "D", Count: 4, NightlyRate: 90, MaxGuests: 4},
		{Key: "privada", Label: "Baño privado", CodePrefix: "P", Count: 1, NightlyRate: 120, MaxGuests: 4},
	})
}

func NewCatalog(types []models.RoomTypeDef) *Catalog {
	c := &Catalog{
		types: types,
		codes: make(map[string]struct{}),
	}
	for _, def := range types {
		for _, code := range c.CodesForType(def) {
			c.codes[code] = struct{}{}
		}
	}

	return c
}

// ListRoomTypes returns the room types in declaration order.
func (c *Catalog) ListRoomTypes() []models.RoomTypeDef {
	out := make([]models.RoomTypeDef, len(c.types))
	copy(out, c.types)

	return out
}

// TypeByKey looks a room type up by its key ("simple", "doble", "privada").
func (c *Catalog) TypeByKey(key string) (models.RoomTypeDef, bool) {
	for _, def := range c.types {
		if def.Key == key {
			return def, true
		}
	}

	return models.RoomTypeDef{}, false
}

// TypeOf resolves a room code to its type by prefix.
func (c *Catalog) TypeOf(code string) (models.RoomTypeDef, bool) {
	for _, def := range c.types {
		if strings.HasPrefix(code, def.CodePrefix) {
			return def, true
		}
	}

	return models.RoomTypeDef{}, false
}

// CodesForType generates the codes of one type: prefix+1..count.
func (c *Catalog) CodesForType(def models.RoomTypeDef) []string {
	codes := make([]string, 0, def.Count)
	for i := 1; i <= def.Count; i++ {
		codes = append(codes, fmt.Sprintf("%s%d", def.CodePrefix, i))
	}

	return codes
}

// AllRoomCodes generates every valid room code, ordered by type declaration
// order then index ascending. Codes are never hand-enumerated anywhere else.
func (c *Catalog) AllRoomCodes() []string {
	var codes []string
	for _, def := range c.types {
		codes = append(codes, c.CodesForType(def)...)
	}

	return codes
}

// HasCode reports whether code belongs to the generated code set. Unlike
// TypeOf it also rejects out-of-range indexes ("S9").
func (c *Catalog) HasCode(code string) bool {
	_, ok := c.codes[code]
	return ok
}
