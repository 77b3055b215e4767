package flights

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"skybook/internal/shared/utils/response"
)

type Controller interface {
	CreateFlight(c *gin.Context)
	GetFlight(c *gin.Context)
	GetAllFlights(c *gin.Context)
	GetSeatMap(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// CreateFlight godoc
// @Summary Create a flight and seed its seat map
// @Tags flights
// @Accept json
// @Produce json
// @Param flight body CreateFlightRequest true "Flight definition"
// @Success 201 {object} response.StandardApiResponse
// @Router /admin/flights [post]
func (ctrl *controller) CreateFlight(c *gin.Context) {
	var req CreateFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	flight, err := ctrl.service.CreateFlight(req)
	if err != nil {
		response.RespondError(c, "Failed to create flight", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Flight created successfully", flight, nil)
}

// GetFlight godoc
// @Summary Get flight details with availability counters
// @Tags flights
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /flights/{flightId} [get]
func (ctrl *controller) GetFlight(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return
	}

	flight, err := ctrl.service.GetFlightByID(c.Request.Context(), flightID)
	if err != nil {
		response.RespondError(c, "Failed to get flight", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Flight retrieved successfully", flight, nil)
}

// GetAllFlights godoc
// @Summary List flights with filters and pagination
// @Tags flights
// @Produce json
// @Success 200 {object} response.StandardApiResponse
// @Router /flights [get]
func (ctrl *controller) GetAllFlights(c *gin.Context) {
	var query FlightListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	flights, err := ctrl.service.GetAllFlights(query)
	if err != nil {
		response.RespondError(c, "Failed to list flights", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Flights retrieved successfully", flights, nil)
}

// GetSeatMap godoc
// @Summary Get the full seat map with availability stats
// @Tags flights
// @Produce json
// @Param flightId path string true "Flight ID"
// @Success 200 {object} response.StandardApiResponse
// @Router /flights/{flightId}/seatmap [get]
func (ctrl *controller) GetSeatMap(c *gin.Context) {
	flightID, err := uuid.Parse(c.Param("flightId"))
	if err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid flight ID", nil, err.Error())
		return
	}

	seatMap, err := ctrl.service.GetSeatMap(c.Request.Context(), flightID)
	if err != nil {
		response.RespondError(c, "Failed to get seat map", err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Seat map retrieved successfully", seatMap, nil)
}
