package seats

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skybook/internal/shared/middleware"
	"skybook/internal/shared/utils/response"
)

type Controller interface {
	LockSeats(c *gin.Context)
	ReleaseSeats(c *gin.Context)
	GetHeldSeats(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// LockSeats godoc
// @Summary Lock seats for the caller with a fixed TTL
// @Tags seats
// @Accept json
// @Produce json
// @Param flightId path string true "Flight ID"
// @Param request body LockSeatsRequest true "Seat numbers to lock"
// @Success 200 {object} response.StandardApiResponse
// @Router /flights/{flightId}/seats/lock [post]
func (ctrl *controller) LockSeats(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return
	}

	var req LockSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	holder := middleware.HolderID(c)
	if holder == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Holder not authenticated", nil, nil)
		return
	}

	result, err := ctrl.service.LockSeats(c.Request.Context(), flightID, req.SeatNumbers, holder)
	if err != nil {
		response.RespondError(c, "Failed to lock seats", err)
		return
	}

	resp := LockSeatsResponse{
		FlightID:    flightID.String(),
		Holder:      holder,
		LockedSeats: result.Locked,
		FailedSeats: result.Failed,
		ExpiresAt:   result.ExpiresAt,
		TTL:         int(time.Until(result.ExpiresAt).Seconds()),
	}
	response.RespondJSON(c, "success", http.StatusOK, "Seat lock processed", resp, nil)
}

// ReleaseSeats godoc
// @Summary Release the caller's seat locks
// @Tags seats
// @Accept json
// @Produce json
// @Param flightId path string true "Flight ID"
// @Param request body ReleaseSeatsRequest true "Seat numbers to release"
// @Success 200 {object} response.StandardApiResponse
// @Router /flights/{flightId}/seats/release [post]
func (ctrl *controller) ReleaseSeats(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return
	}

	var req ReleaseSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	holder := middleware.HolderID(c)
	if holder == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Holder not authenticated", nil, nil)
		return
	}

	// Admins may release any holder's locks.
	result, err := ctrl.service.ReleaseSeats(c.Request.Context(), flightID, req.SeatNumbers, holder, middleware.IsAdmin(c))
	if err != nil {
		response.RespondError(c, "Failed to release seats", err)
		return
	}

	resp := ReleaseSeatsResponse{
		FlightID:      flightID.String(),
		ReleasedSeats: result.Released,
		FailedSeats:   result.Failed,
	}
	response.RespondJSON(c, "success", http.StatusOK, "Seat release processed", resp, nil)
}

// GetHeldSeats godoc
// @Summary List the caller's live locks on a flight
// @Tags seats
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /flights/{flightId}/seats/locked [get]
func (ctrl *controller) GetHeldSeats(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return
	}

	holder := middleware.HolderID(c)
	if holder == "" {
		response.RespondJSON(c, "error", http.StatusUnauthorized, "Holder not authenticated", nil, nil)
		return
	}

	locks, err := ctrl.service.GetLockedByHolder(c.Request.Context(), flightID, holder)
	if err != nil {
		response.RespondError(c, "Failed to get held seats", err)
		return
	}

	resp := HeldSeatsResponse{
		FlightID: flightID.String(),
		Holder:   holder,
		Locks:    locks,
	}
	response.RespondJSON(c, "success", http.StatusOK, "Held seats retrieved successfully", resp, nil)
}
