package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkim1999m/hospedaje-reservas/controllers"
	"github.com/dkim1999m/hospedaje-reservas/routes"
	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/storage"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	store := storage.NewMemoryStore()
	catalog := services.DefaultCatalog()
	pricing := services.NewPricingService(catalog)
	inventory := services.NewInventoryService(catalog, store)
	ledger := services.NewLedgerService(store)
	whatsapp := services.NewWhatsAppClient("Hospedaje Plaza", "51927137867", "927137867")
	bookings := services.NewBookingService(catalog, pricing, inventory, ledger, whatsapp)

	return routes.SetupRouter(
		controllers.NewRoomController(catalog, inventory, ledger),
		controllers.NewRoomTypeController(catalog),
		controllers.NewBookingController(bookings, ledger),
		controllers.NewSettingsController("Hospedaje Plaza", whatsapp),
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func bookingPayload() map[string]any {
	return map[string]any{
		"name":     "Ana Quispe",
		"doc":      "45678912",
		"phone":    "987654321",
		"guests":   1,
		"checkin":  "2024-01-10",
		"checkout": "2024-01-12",
		"roomType": "simple",
		"roomCode": "S1",
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Error   string          `json:"error"`
	Reason  string          `json:"reason"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))

	return env
}

func TestGetRoomsListsSeededInventory(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var rooms []struct {
		Code   string `json:"code"`
		Type   string `json:"type"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rooms))
	require.Len(t, rooms, 13)

	byCode := make(map[string]string)
	for _, room := range rooms {
		byCode[room.Code] = room.Status
	}
	assert.Equal(t, "busy", byCode["S2"])
	assert.Equal(t, "free", byCode["S1"])
	assert.Equal(t, "busy", byCode["P1"])
}

func TestAvailableRoomsFiltersByType(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/rooms/available?type=doble", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var codes []string
	require.NoError(t, json.Unmarshal(env.Data, &codes))
	assert.Equal(t, []string{"D1", "D3", "D4"}, codes, "D2 is seeded busy")

	w = doJSON(t, router, http.MethodGet, "/api/rooms/available?type=suite", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConfirmBookingFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	env := decodeEnvelope(t, w)
	require.True(t, env.Success)

	var result struct {
		Booking struct {
			ID       string  `json:"id"`
			RoomCode string  `json:"roomCode"`
			Total    float64 `json:"total"`
			Deposit  float64 `json:"deposit"`
		} `json:"booking"`
		WhatsAppURL string `json:"whatsappUrl"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.True(t, strings.HasPrefix(result.Booking.ID, "R-"))
	assert.Equal(t, 120.0, result.Booking.Total)
	assert.Equal(t, 36.0, result.Booking.Deposit)
	assert.True(t, strings.HasPrefix(result.WhatsAppURL, "https://wa.me/51927137867?text="))

	// The room is now occupied: booking it again is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env = decodeEnvelope(t, w)
	assert.False(t, env.Success)
	assert.Equal(t, "room_unavailable", env.Reason)
	assert.NotEmpty(t, env.Error)

	// Exactly one booking in the ledger.
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env = decodeEnvelope(t, w)
	var bookings []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	assert.Len(t, bookings, 1)
}

func TestPreviewBookingRejectsIncompleteForm(t *testing.T) {
	router := newTestRouter(t)

	payload := bookingPayload()
	payload["phone"] = ""

	w := doJSON(t, router, http.MethodPost, "/api/bookings/preview", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	env := decodeEnvelope(t, w)
	assert.Equal(t, "incomplete_form", env.Reason)
	assert.Equal(t, "Completa todos los campos obligatorios.", env.Error)
}

func TestToggleRoom(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPatch, "/api/rooms/S1/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var out struct {
		Code   string `json:"code"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "S1", out.Code)
	assert.Equal(t, "busy", out.Status)

	w = doJSON(t, router, http.MethodPatch, "/api/rooms/S9/toggle", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetClearsBookingsAndInventory(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/rooms/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil)
	env := decodeEnvelope(t, w)
	var bookings []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &bookings))
	assert.Empty(t, bookings)

	w = doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	assert.Equal(t, http.StatusCreated, w.Code, "S1 is free again after reset")
}

func TestExportBookings(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/bookings", bookingPayload())
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/bookings/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "reservas_hospedaje.json")

	var exported []struct {
		RoomCode string `json:"roomCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	require.Len(t, exported, 1)
	assert.Equal(t, "S1", exported[0].RoomCode)
}

func TestHotelSettings(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/settings/hotel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var settings struct {
		Name        string `json:"name"`
		WhatsAppURL string `json:"whatsappUrl"`
		Today       string `json:"today"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &settings))
	assert.Equal(t, "Hospedaje Plaza", settings.Name)
	assert.True(t, strings.HasPrefix(settings.WhatsAppURL, "https://wa.me/51927137867?text="))
	assert.Len(t, settings.Today, 10)
}

func TestRoomTypesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/room-types", nil)
	require.Equal(t, http.StatusOK, w.Code)

	env := decodeEnvelope(t, w)
	var types []struct {
		Key         string  `json:"key"`
		NightlyRate float64 `json:"nightlyRate"`
		Count       int     `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &types))
	require.Len(t, types, 3)
	assert.Equal(t, "simple", types[0].Key)
	assert.Equal(t, 60.0, types[0].NightlyRate)
	assert.Equal(t, 8, types[0].Count)
}
