package httpserver

import (
	"errors"
	"net/http"

	"shopadmin/internal/domain"
	"shopadmin/internal/service/auth"

	"github.com/gin-gonic/gin"
)

// fail maps a service error to its HTTP status and the uniform
// {"message": ...} error body.
func fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"message": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrBadCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInsufficientStock),
		errors.Is(err, domain.ErrAlreadyRefunded),
		errors.Is(err, domain.ErrCheckoutState):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalid),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrNoCustomer):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": msg})
}
