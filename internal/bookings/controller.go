package bookings

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skybook/internal/shared/middleware"
	"skybook/internal/shared/utils/response"
)

type Controller interface {
	CreateBooking(c *gin.Context)
	GetBooking(c *gin.Context)
	GetBookingByRef(c *gin.Context)
	GetMyBookings(c *gin.Context)
	ConfirmPayment(c *gin.Context)
	CancelBooking(c *gin.Context)
	CheckIn(c *gin.Context)
	MarkNoShow(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateBooking godoc
// @Summary Create a pending booking with a payment deadline
// @Tags bookings
// @Accept json
// @Produce json
// @Param booking body CreateBookingRequest true "Booking request"
// @Success 201 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings [post]
func (ctrl *controller) CreateBooking(c *gin.Context) {
	holderID := middleware.HolderID(c)
	if holderID == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Missing holder identity", nil, nil)
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	booking, err := ctrl.service.CreateBooking(c.Request.Context(), holderID, req)
	if err != nil {
		response.RespondError(c, "Failed to create booking", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Booking created successfully", booking, nil)
}

// GetBooking godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings/{bookingId} [get]
func (ctrl *controller) GetBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := ctrl.service.GetBooking(c.Request.Context(), bookingID, middleware.HolderID(c), middleware.IsAdmin(c))
	if err != nil {
		response.RespondError(c, "Failed to get booking", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// GetBookingByRef godoc
// @Summary Get a booking by its human-readable reference
// @Tags bookings
// @Produce json
// @Param ref path string true "Booking reference"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings/ref/{ref} [get]
func (ctrl *controller) GetBookingByRef(c *gin.Context) {
	booking, err := ctrl.service.GetBookingByRef(c.Request.Context(), c.Param("ref"), middleware.HolderID(c), middleware.IsAdmin(c))
	if err != nil {
		response.RespondError(c, "Failed to get booking", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", booking, nil)
}

// GetMyBookings godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings [get]
func (ctrl *controller) GetMyBookings(c *gin.Context) {
	holderID := middleware.HolderID(c)
	if holderID == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Missing holder identity", nil, nil)
		return
	}

	var query BookingListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	bookings, err := ctrl.service.GetHolderBookings(c.Request.Context(), holderID, query)
	if err != nil {
		response.RespondError(c, "Failed to list bookings", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Bookings retrieved successfully", bookings, nil)
}

// ConfirmPayment godoc
// @Summary Confirm payment within the deadline
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/payment [post]
func (ctrl *controller) ConfirmPayment(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := ctrl.service.ConfirmPayment(c.Request.Context(), bookingID, middleware.HolderID(c), middleware.IsAdmin(c))
	if err != nil {
		response.RespondError(c, "Failed to confirm payment", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Payment confirmed successfully", booking, nil)
}

// CancelBooking godoc
// @Summary Cancel a booking and compute the refund
// @Tags bookings
// @Accept json
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Param cancel body CancelBookingRequest false "Cancellation reason"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/cancel [post]
func (ctrl *controller) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	result, err := ctrl.service.CancelBooking(c.Request.Context(), bookingID, middleware.HolderID(c), middleware.IsAdmin(c), req.Reason)
	if err != nil {
		response.RespondError(c, "Failed to cancel booking", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking cancelled successfully", result, nil)
}

// CheckIn godoc
// @Summary Check in for a confirmed or ticketed booking
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /bookings/{bookingId}/check-in [post]
func (ctrl *controller) CheckIn(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	booking, err := ctrl.service.CheckIn(c.Request.Context(), bookingID, middleware.HolderID(c), middleware.IsAdmin(c))
	if err != nil {
		response.RespondError(c, "Failed to check in", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Checked in successfully", booking, nil)
}

// MarkNoShow godoc
// @Summary Mark a booking as a no-show (admin)
// @Tags bookings
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse
// @Security BearerAuth
// @Router /admin/bookings/{bookingId}/no-show [post]
func (ctrl *controller) MarkNoShow(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	if err := ctrl.service.MarkNoShow(c.Request.Context(), bookingID); err != nil {
		response.RespondError(c, "Failed to mark no-show", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking marked as no-show", nil, nil)
}
