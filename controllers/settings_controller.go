package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

type SettingsController struct {
	propertyName string
	messenger    services.Messenger
}

func NewSettingsController(propertyName string, messenger services.Messenger) *SettingsController {
	return &SettingsController{propertyName: propertyName, messenger: messenger}
}

// GetHotelSettings (GET /api/settings/hotel) returns the property identity,
// the direct WhatsApp contact link and today's date for the date pickers.
func (sc *SettingsController) GetHotelSettings(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"name":        sc.propertyName,
		"whatsappUrl": sc.messenger.ContactLink(),
		"today":       utils.TodayISO(),
	})
}
