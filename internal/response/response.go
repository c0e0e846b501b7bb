package response

import (
	"errors"
	"net/http"

	"github.com/Kilat-Pet-Delivery/service-voucher/internal/domain"
	"github.com/gin-gonic/gin"
)

// Envelope is the JSON body of every API response.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Success writes a 200 response.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{Error: message})
}

// Error maps err to a status code. Unknown errors become a generic 500 so
// internal details are not leaked.
func Error(c *gin.Context, err error) {
	_ = c.Error(err)

	status := StatusFor(err)
	message := "internal server error"
	var domErr *domain.DomainError
	if status != http.StatusInternalServerError && errors.As(err, &domErr) {
		message = domErr.Message
	}
	c.AbortWithStatusJSON(status, Envelope{Error: message})
}

// StatusFor returns the HTTP status code for an error.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
