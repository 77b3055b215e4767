package flights

import (
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFlightRoutes(router *gin.RouterGroup, controller Controller) {
	// Public routes - anyone can browse flights and seat maps
	publicFlights := router.Group("/flights")
	{
		publicFlights.GET("", controller.GetAllFlights)                // GET /api/v1/flights
		publicFlights.GET("/:flightId", controller.GetFlight)          // GET /api/v1/flights/:flightId
		publicFlights.GET("/:flightId/seatmap", controller.GetSeatMap) // GET /api/v1/flights/:flightId/seatmap
	}

	// Admin routes - flight management
	adminFlights := router.Group("/admin/flights")
	adminFlights.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminFlights.POST("", controller.CreateFlight) // POST /api/v1/admin/flights
	}
}
