package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkim1999m/hospedaje-reservas/models"
	"github.com/dkim1999m/hospedaje-reservas/services"
	"github.com/dkim1999m/hospedaje-reservas/utils"
)

type BookingController struct {
	bookings *services.BookingService
	ledger   *services.LedgerService
}

func NewBookingController(bookings *services.BookingService, ledger *services.LedgerService) *BookingController {
	return &BookingController{bookings: bookings, ledger: ledger}
}

func bindBookingRequest(c *gin.Context) (*models.BookingRequest, bool) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ booking payload: %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Solicitud inválida.")
		return nil, false
	}

	return &req, true
}

// PreviewBooking (POST /api/bookings/preview) validates and prices a
// candidate without touching inventory or ledger.
func (bc *BookingController) PreviewBooking(c *gin.Context) {
	req, ok := bindBookingRequest(c)
	if !ok {
		return
	}

	result, err := bc.bookings.Preview(req)
	if rejection := services.IsRejection(err); rejection != nil {
		utils.JSONRejected(c, http.StatusUnprocessableEntity, string(rejection.Reason), rejection.Message)
		return
	}
	if err != nil {
		log.Printf("❌ preview booking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo previsualizar la reserva.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, result)
}

// CreateBooking (POST /api/bookings) confirms a booking: marks the room
// occupied, appends it to the ledger and returns the WhatsApp handoff URL.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	req, ok := bindBookingRequest(c)
	if !ok {
		return
	}

	result, err := bc.bookings.Confirm(req)
	if rejection := services.IsRejection(err); rejection != nil {
		utils.JSONRejected(c, http.StatusUnprocessableEntity, string(rejection.Reason), rejection.Message)
		return
	}
	if err != nil {
		log.Printf("❌ confirm booking: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo registrar la reserva.")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, result)
}

// GetBookings (GET /api/bookings) lists the ledger in confirmation order.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bookings, err := bc.ledger.List()
	if err != nil {
		log.Printf("❌ list bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo listar las reservas.")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// ExportBookings (GET /api/bookings/export) serves the full ledger as a
// downloadable JSON document.
func (bc *BookingController) ExportBookings(c *gin.Context) {
	data, err := bc.ledger.ExportAll()
	if err != nil {
		log.Printf("❌ export bookings: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "No se pudo exportar las reservas.")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reservas_hospedaje.json"`)
	c.Data(http.StatusOK, "application/json", data)
}
