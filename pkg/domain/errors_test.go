package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("create account: %w", domain.NewValidationError("name", domain.ReasonRequired))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NotErrorIs(t, err, domain.ErrInvalidAmount)
	assert.EqualError(t, err, "create account: name is required")

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "name", ve.Field)
	assert.Equal(t, domain.ReasonRequired, ve.Reason)
}

func TestCurrencyMismatchIsInvalidAmount(t *testing.T) {
	t.Parallel()
	assert.ErrorIs(t, domain.ErrCurrencyMismatch, domain.ErrInvalidAmount)
	assert.NotErrorIs(t, domain.ErrInvalidAmount, domain.ErrCurrencyMismatch)
}

func TestValidationErrorWithErr(t *testing.T) {
	t.Parallel()
	base := domain.NewValidationError("amount", domain.ReasonInvalid)
	err := base.WithErr(domain.ErrInvalidAmount)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	assert.EqualError(t, err, "amount is invalid")
	assert.NotErrorIs(t, base, domain.ErrInvalidAmount)
}
