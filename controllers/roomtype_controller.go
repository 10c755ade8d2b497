package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

type RoomTypeController struct {
	catalog *services.Catalog
}

func NewRoomTypeController(catalog *services.Catalog) *RoomTypeController {
	return &RoomTypeController{catalog: catalog}
}

// GetRoomTypes (GET /api/room-types) returns the catalog in declaration
// order, rates included, for the type selector.
func (tc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, tc.catalog.ListRoomTypes())
}
