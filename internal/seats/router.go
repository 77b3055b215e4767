package seats

import (
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupSeatRoutes(router *gin.RouterGroup, controller Controller) {
	// All lock operations require an authenticated holder identity.
	seatRoutes := router.Group("/flights/:flightId/seats")
	seatRoutes.Use(middleware.JWTAuth())
	{
		seatRoutes.POST("/lock", controller.LockSeats)       // POST /api/v1/flights/:flightId/seats/lock
		seatRoutes.POST("/release", controller.ReleaseSeats) // POST /api/v1/flights/:flightId/seats/release
		seatRoutes.GET("/locked", controller.GetHeldSeats)   // GET /api/v1/flights/:flightId/seats/locked
	}
}
