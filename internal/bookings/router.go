package bookings

import (
	"github.com/gin-gonic/gin"

	"skybook/internal/shared/middleware"
)

func SetupBookingRoutes(router *gin.RouterGroup, controller Controller) {
	bookingRoutes := router.Group("/bookings")
	bookingRoutes.Use(middleware.JWTAuth())
	{
		bookingRoutes.POST("", controller.CreateBooking)
		bookingRoutes.GET("", controller.GetMyBookings)
		bookingRoutes.GET("/ref/:ref", controller.GetBookingByRef)
		bookingRoutes.GET("/:bookingId", controller.GetBooking)
		bookingRoutes.POST("/:bookingId/payment", controller.ConfirmPayment)
		bookingRoutes.POST("/:bookingId/cancel", controller.CancelBooking)
		bookingRoutes.POST("/:bookingId/check-in", controller.CheckIn)
	}

	adminRoutes := router.Group("/admin/bookings")
	adminRoutes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminRoutes.POST("/:bookingId/no-show", controller.MarkNoShow)
	}
}
