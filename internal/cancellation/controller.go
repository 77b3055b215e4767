package cancellation

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skybook/internal/shared/utils/response"
)

type Controller interface {
	GetCancellationRecord(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// GetCancellationRecord godoc
// @Summary Get the immutable cancellation record of a booking
// @Tags cancellations
// @Produce json
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /bookings/{bookingId}/cancellation [get]
func (ctrl *controller) GetCancellationRecord(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("bookingId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid booking ID", nil, err.Error())
		return
	}

	record, err := ctrl.service.GetByBookingID(bookingID)
	if err != nil {
		response.RespondError(c, "Failed to get cancellation record", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Cancellation record retrieved successfully", record, nil)
}
