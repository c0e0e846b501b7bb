package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Kinds(t *testing.T) {
	notFound := NewNotFoundError("Voucher does not exist.")
	conflict := NewConflictError("Voucher already exist.")

	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrConflict))
	assert.True(t, errors.Is(conflict, ErrConflict))
	assert.Equal(t, "Voucher does not exist.", notFound.Error())
	assert.Equal(t, "Voucher already exist.", conflict.Error())
}

func TestDomainError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("apply voucher: %w", NewNotFoundError("Voucher does not exist."))

	var domErr *DomainError
	assert.True(t, errors.As(wrapped, &domErr))
	assert.Equal(t, "Voucher does not exist.", domErr.Message)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
}

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("discount", "must be between 1 and 100")

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "discount: must be between 1 and 100", err.Error())
}
