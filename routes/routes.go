package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dkim1999m/hospedaje-reservas/controllers"
	"github.com/dkim1999m/hospedaje-reservas/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.RoomController,
	tc *controllers.RoomTypeController,
	bc *controllers.BookingController,
	sc *controllers.SettingsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Request-ID"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("", tc.GetRoomTypes)
		}

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)

			// must come before /:code
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.POST("/reset", rc.ResetDemo)

			rooms.PATCH("/:code/toggle", rc.ToggleRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.POST("/preview", bc.PreviewBooking)
			bookings.GET("/export", bc.ExportBookings)
		}

		settings := api.Group("/settings")
		{
			settings.GET("/hotel", sc.GetHotelSettings)
		}
	}

	return r
}
