package cancellation

import (
	"skybook/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCancellationRoutes(router *gin.RouterGroup, controller Controller) {
	routes := router.Group("/bookings/:bookingId/cancellation")
	routes.Use(middleware.JWTAuth())
	{
		routes.GET("", controller.GetCancellationRecord) // GET /api/v1/bookings/:bookingId/cancellation
	}
}
