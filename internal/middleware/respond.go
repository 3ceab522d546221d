package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/restexample/shop-service/internal/validation"
)

type BadRequestErrorResponse struct {
	Message string                       `json:"message"`
	Details []validation.ValidationError `json:"details"`
}

func RespondWithValidationError(c *gin.Context, validationErrors []validation.ValidationError) {
	c.JSON(http.StatusBadRequest, BadRequestErrorResponse{
		Message: "Invalid request data",
		Details: validationErrors,
	})
}

func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"message": message,
	})
}

// RespondWithText writes message as a text/plain body.
func RespondWithText(c *gin.Context, code int, message string) {
	c.String(code, message)
}

// RespondWithInternalError attaches err to the context for the request logger
// and writes the generic 500 text.
func RespondWithInternalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, fmt.Sprintf("An error occurred: %s", err.Error()))
}
