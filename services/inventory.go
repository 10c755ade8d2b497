package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/storage"
)

const (
	roomsRecordKey     = "hospedaje_rooms_v1"
	roomsSchemaVersion = 1
)

// seededBusy simulates guests already in the house when the state is first
// synthesized or reset.
var seededBusy = map[string]bool{"S2": true, "S5": true, "D2": true, "P1": true}

// roomsRecord is the persisted form of the inventory. Records written before
// the version wrapper existed are a flat code->state mapping and are migrated
// on load.
type roomsRecord struct {
	Version int               `json:"version"`
	Rooms   models.RoomStatus `json:"rooms"`
}

// InventoryService owns the free/busy state of every room. Mutations are
// serialized under one lock and persist the full mapping before returning,
// so an external reader never sees a partial write.
type InventoryService struct {
	mu      sync.Mutex
	catalog *Catalog
	store   storage.Store
}

func NewInventoryService(catalog *Catalog, store storage.Store) *InventoryService {
	return &InventoryService{catalog: catalog, store: store}
}

// Load returns the current mapping, synthesizing and persisting the seeded
// default on first access.
func (s *InventoryService) Load() (models.RoomStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

// load assumes s.mu is held.
func (s *InventoryService) load() (models.RoomStatus, error) {
	raw, err := s.store.Get(roomsRecordKey)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return s.seed()
	}

	if err != nil {
		return nil, fmt.Errorf("read rooms record: %w", err)
	}

	var rec roomsRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.Rooms == nil {
		// Legacy record without the version wrapper.
		var legacy models.RoomStatus
		if err := json.Unmarshal(raw, &legacy); err != nil {
			return nil, fmt.Errorf("decode rooms record: %w", err)
		}

		rec = roomsRecord{Version: roomsSchemaVersion, Rooms: legacy}
	}

	return s.reconcile(rec.Rooms)
}

// reconcile forces the stored key set to match the catalog-generated code
// set: codes missing from storage get their seeded default, stale codes are
// dropped. The reconciled mapping is persisted when anything changed.
func (s *InventoryService) reconcile(stored models.RoomStatus) (models.RoomStatus, error) {
	status := make(models.RoomStatus)
	changed := false

	for _, code := range s.catalog.AllRoomCodes() {
		state, ok := stored[code]
		if ok && (state == models.RoomFree || state == models.RoomBusy) {
			status[code] = state
			continue
		}

		status[code] = defaultState(code)
		changed = true
	}

	if len(stored) != len(status) {
		changed = true
	}

	if changed {
		if err := s.persist(status); err != nil {
			return nil, err
		}
	}

	return status, nil
}

func defaultState(code string) models.RoomState {
	if seededBusy[code] {
		return models.RoomBusy
	}

	return models.RoomFree
}

// seed assumes s.mu is held.
func (s *InventoryService) seed() (models.RoomStatus, error) {
	status := make(models.RoomStatus)
	for _, code := range s.catalog.AllRoomCodes() {
		status[code] = defaultState(code)
	}

	if err := s.persist(status); err != nil {
		return nil, err
	}

	return status, nil
}

func (s *InventoryService) persist(status models.RoomStatus) error {
	raw, err := json.Marshal(roomsRecord{Version: roomsSchemaVersion, Rooms: status})
	if err != nil {
		return fmt.Errorf("encode rooms record: %w", err)
	}

	return s.store.Put(roomsRecordKey, raw)
}

// SetStatus writes one room's state and persists the full mapping.
func (s *InventoryService) SetStatus(code string, state models.RoomState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.HasCode(code) {
		return fmt.Errorf("%w: %s", ErrInvalidRoomCode, code)
	}

	status, err := s.load()
	if err != nil {
		return err
	}

	status[code] = state

	return s.persist(status)
}

// Toggle flips a room between free and busy and returns the new state.
func (s *InventoryService) Toggle(code string) (models.RoomState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.HasCode(code) {
		return "", fmt.Errorf("%w: %s", ErrInvalidRoomCode, code)
	}

	status, err := s.load()
	if err != nil {
		return "", err
	}

	next := models.RoomBusy
	if status[code] == models.RoomBusy {
		next = models.RoomFree
	}

	status[code] = next

	if err := s.persist(status); err != nil {
		return "", err
	}

	return next, nil
}

// MarkOccupied moves a free room to busy. The check and the write happen
// under the same lock, so a room can never be confirmed twice.
func (s *InventoryService) MarkOccupied(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.HasCode(code) {
		return fmt.Errorf("%w: %s", ErrInvalidRoomCode, code)
	}

	status, err := s.load()
	if err != nil {
		return err
	}

	if status[code] != models.RoomFree {
		return reject(ReasonRoomUnavailable, msgRoomUnavailable)
	}

	status[code] = models.RoomBusy

	return s.persist(status)
}

// Reset discards the persisted state and re-synthesizes the seeded default.
func (s *InventoryService) Reset() (models.RoomStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(roomsRecordKey); err != nil {
		return nil, fmt.Errorf("delete rooms record: %w", err)
	}

	return s.seed()
}
