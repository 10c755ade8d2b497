package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

type RoomController struct {
	catalog   *services.Catalog
	inventory *services.InventoryService
	ledger    *services.LedgerService
}

func NewRoomController(
	catalog *services.Catalog,
	inventory *services.InventoryService,
	ledger *services.LedgerService,
) *RoomController {
	return &RoomController{catalog: catalog, inventory: inventory, ledger: ledger}
}

// GetRooms (GET /api/rooms) returns every room with its current status, in
// catalog order. Feeds both the availability grid and the admin toggle list.
func (rc *RoomController) GetRooms(c *gin.Context) {
	status, err := rc.inventory.Load()
	if err != nil {
		log.Printf("❌ load inventory: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo cargar el estado de habitaciones.")
		return
	}

	rooms := make([]models.Room, 0, len(status))
	for _, code := range rc.catalog.AllRoomCodes() {
		def, _ := rc.catalog.TypeOf(code)
		rooms = append(rooms, models.Room{
			Code:   code,
			Type:   def.Key,
			Label:  def.Label,
			Status: status[code],
		})
	}

	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// GetAvailableRooms (GET /api/rooms/available?type=simple) returns the free
// codes of one type, for the room selector.
func (rc *RoomController) GetAvailableRooms(c *gin.Context) {
	def, ok := rc.catalog.TypeByKey(c.Query("type"))
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Tipo de habitación desconocido.")
		return
	}

	status, err := rc.inventory.Load()
	if err != nil {
		log.Printf("❌ load inventory: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo cargar el estado de habitaciones.")
		return
	}

	free := make([]string, 0, def.Count)
	for _, code := range rc.catalog.CodesForType(def) {
		if status[code] == models.RoomFree {
			free = append(free, code)
		}
	}

	utils.JSONSuccess(c, http.StatusOK, free)
}

// ToggleRoom (PATCH /api/rooms/:code/toggle) flips one room's state.
func (rc *RoomController) ToggleRoom(c *gin.Context) {
	code := c.Param("code")

	state, err := rc.inventory.Toggle(code)
	if errors.Is(err, services.ErrInvalidRoomCode) {
		utils.JSONError(c, http.StatusNotFound, "Habitación desconocida: "+code)
		return
	}
	if err != nil {
		log.Printf("❌ toggle room %s: %v", code, err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo actualizar la habitación.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"code": code, "status": state})
}

// ResetDemo (POST /api/rooms/reset) discards both persisted records and
// restores the seeded demo state.
func (rc *RoomController) ResetDemo(c *gin.Context) {
	status, err := rc.inventory.Reset()
	if err != nil {
		log.Printf("❌ reset inventory: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo restablecer la demo.")
		return
	}

	if err := rc.ledger.Reset(); err != nil {
		log.Printf("❌ reset ledger: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo restablecer la demo.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"message": "Demo restablecida. Se recuperó estado inicial simulado.",
		"rooms":   status,
	})
}
