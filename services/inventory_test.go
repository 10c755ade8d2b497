package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/storage"
)

func newTestInventory(t *testing.T) (*InventoryService, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	return NewInventoryService(DefaultCatalog(), store), store
}

func TestLoadSynthesizesSeededDefault(t *testing.T) {
	inventory, store := newTestInventory(t)

	status, err := inventory.Load()
	require.NoError(t, err)

	assert.Len(t, status, 13)
	for _, code := range []string{"S2", "S5", "D2", "P1"} {
		assert.Equal(t, models.RoomBusy, status[code], "%s starts occupied", code)
	}
	assert.Equal(t, models.RoomFree, status["S1"])
	assert.Equal(t, models.RoomFree, status["D1"])

	// First access persists the default with the schema version.
	raw, err := store.Get("hospedaje_rooms_v1")
	require.NoError(t, err)

	var rec struct {
		Version int               `json:"version"`
		Rooms   models.RoomStatus `json:"rooms"`
	}
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, 1, rec.Version)
	assert.Equal(t, status, rec.Rooms)
}

func TestSetStatusRejectsUnknownCode(t *testing.T) {
	inventory, _ := newTestInventory(t)

	err := inventory.SetStatus("S9", models.RoomBusy)
	assert.ErrorIs(t, err, ErrInvalidRoomCode)

	_, err = inventory.Toggle("Z1")
	assert.ErrorIs(t, err, ErrInvalidRoomCode)

	err = inventory.MarkOccupied("")
	assert.ErrorIs(t, err, ErrInvalidRoomCode)
}

func TestTogglePersistsFullMapping(t *testing.T) {
	inventory, _ := newTestInventory(t)

	state, err := inventory.Toggle("S1")
	require.NoError(t, err)
	assert.Equal(t, models.RoomBusy, state)

	state, err = inventory.Toggle("S2")
	require.NoError(t, err)
	assert.Equal(t, models.RoomFree, state, "seeded busy room toggles back to free")

	status, err := inventory.Load()
	require.NoError(t, err)
	assert.Equal(t, models.RoomBusy, status["S1"])
	assert.Equal(t, models.RoomFree, status["S2"])
}

func TestMarkOccupiedIsCheckAndSet(t *testing.T) {
	inventory, _ := newTestInventory(t)

	require.NoError(t, inventory.MarkOccupied("S1"))

	err := inventory.MarkOccupied("S1")
	rejection := IsRejection(err)
	require.NotNil(t, rejection)
	assert.Equal(t, ReasonRoomUnavailable, rejection.Reason)

	// Seeded-busy rooms are unavailable from the start.
	err = inventory.MarkOccupied("S2")
	require.NotNil(t, IsRejection(err))
}

func TestResetRestoresSeededDefault(t *testing.T) {
	inventory, _ := newTestInventory(t)

	require.NoError(t, inventory.MarkOccupied("S1"))
	_, err := inventory.Toggle("P1")
	require.NoError(t, err)

	status, err := inventory.Reset()
	require.NoError(t, err)

	reloaded, err := inventory.Load()
	require.NoError(t, err)
	assert.Equal(t, status, reloaded)

	assert.Equal(t, models.RoomFree, reloaded["S1"])
	assert.Equal(t, models.RoomBusy, reloaded["S2"])
	assert.Equal(t, models.RoomBusy, reloaded["P1"])
}

func TestLoadMigratesLegacyRecord(t *testing.T) {
	inventory, store := newTestInventory(t)

	// Record written before the version wrapper: a flat mapping, with one
	// stale code and one catalog code missing.
	legacy := models.RoomStatus{"S1": models.RoomBusy, "OLD9": models.RoomFree}
	for _, code := range []string{"S2", "S3", "S4", "S5", "S6", "S7", "S8", "D1", "D2", "D3", "D4"} {
		legacy[code] = models.RoomFree
	}
	raw, err := json.Marshal(legacy)
	require.NoError(t, err)
	require.NoError(t, store.Put("hospedaje_rooms_v1", raw))

	status, err := inventory.Load()
	require.NoError(t, err)

	assert.Len(t, status, 13)
	assert.NotContains(t, status, "OLD9", "stale code dropped")
	assert.Equal(t, models.RoomBusy, status["S1"], "stored state kept")
	assert.Equal(t, models.RoomFree, status["S2"], "stored state wins over seed")
	assert.Equal(t, models.RoomBusy, status["P1"], "missing code added with seeded default")

	// The reconciled mapping was re-persisted in the versioned form.
	raw, err = store.Get("hospedaje_rooms_v1")
	require.NoError(t, err)

	var rec roomsRecord
	require.NoError(t, json.Unmarshal(raw, &rec))
	assert.Equal(t, roomsSchemaVersion, rec.Version)
	assert.Equal(t, status, rec.Rooms)
}
