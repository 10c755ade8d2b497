package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllRoomCodesGenerated(t *testing.T) {
	catalog := DefaultCatalog()

	codes := catalog.AllRoomCodes()

	total := 0
	for _, def := range catalog.ListRoomTypes() {
		total += def.Count
	}
	assert.Len(t, codes, total)

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}

	// Stable ordering: declaration order, then index ascending.
	assert.Equal(t, "S1", codes[0])
	assert.Equal(t, "S8", codes[7])
	assert.Equal(t, "D1", codes[8])
	assert.Equal(t, "P1", codes[len(codes)-1])
}

func TestTypeOfByPrefix(t *testing.T) {
	catalog := DefaultCatalog()

	def, ok := catalog.TypeOf("S3")
	require.True(t, ok)
	assert.Equal(t, "simple", def.Key)

	def, ok = catalog.TypeOf("P1")
	require.True(t, ok)
	assert.Equal(t, "privada", def.Key)

	_, ok = catalog.TypeOf("X1")
	assert.False(t, ok)
}

func TestHasCodeRejectsOutOfRange(t *testing.T) {
	catalog := DefaultCatalog()

	assert.True(t, catalog.HasCode("S8"))
	assert.True(t, catalog.HasCode("D4"))
	assert.False(t, catalog.HasCode("S9"), "prefix matches but index is out of range")
	assert.False(t, catalog.HasCode("D5"))
	assert.False(t, catalog.HasCode(""))
}

func TestCodesForType(t *testing.T) {
	catalog := DefaultCatalog()

	def, ok := catalog.TypeByKey("doble")
	require.True(t, ok)
	assert.Equal(t, []string{"D1", "D2", "D3", "D4"}, catalog.CodesForType(def))
}
