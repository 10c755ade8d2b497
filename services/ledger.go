package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/storage"
)

const bookingsRecordKey = "hospedaje_bookings_v1"

// LedgerService is the append-only record of confirmed bookings, in
// confirmation order. It performs no validation: callers must have already
// run the candidate through the validator.
type LedgerService struct {
	mu    sync.Mutex
	store storage.Store
}

func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// list assumes s.mu is held.
func (s *LedgerService) list() ([]models.Booking, error) {
	raw, err := s.store.Get(bookingsRecordKey)
	if errors.Is(err, storage.ErrRecordNotFound) {
		return []models.Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read bookings record: %w", err)
	}

	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		return nil, fmt.Errorf("decode bookings record: %w", err)
	}

	return bookings, nil
}

// Append adds one confirmed booking and persists the full sequence.
func (s *LedgerService) Append(booking models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.list()
	if err != nil {
		return err
	}

	bookings = append(bookings, booking)

	raw, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("encode bookings record: %w", err)
	}

	return s.store.Put(bookingsRecordKey, raw)
}

// List returns every confirmed booking in insertion order.
func (s *LedgerService) List() ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.list()
}

// ExportAll renders the full ledger as an indented JSON document, ready to
// be handed off as a download.
func (s *LedgerService) ExportAll() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.list()
	if err != nil {
		return nil, err
	}

	return json.MarshalIndent(bookings, "", "  ")
}

// Reset clears the ledger. Only the full demo reset calls this.
func (s *LedgerService) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Delete(bookingsRecordKey)
}
