package response

import (
	"skybook/internal/shared/apperr"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// RespondError maps a domain error onto the standard envelope using its
// apperr classification for the HTTP status.
func RespondError(c *gin.Context, message string, err error) {
	RespondJSON(c, "error", apperr.HTTPStatus(err), message, nil, err.Error())
}
