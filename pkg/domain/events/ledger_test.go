package events_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/domain/events"
	"github.com/stretchr/testify/assert"
)

func TestReasonFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		err  error
		want events.Reason
	}{
		{domain.NewValidationError("name", domain.ReasonRequired), events.ReasonValidation},
		{domain.ErrDuplicateAccount, events.ReasonDuplicateAccount},
		{fmt.Errorf("deposit: %w", domain.ErrNotFound), events.ReasonNotFound},
		{domain.ErrCurrencyMismatch, events.ReasonInvalidAmount},
		{domain.ErrInsufficientFunds, events.ReasonInsufficientFunds},
		{errors.New("disk on fire"), events.ReasonInternal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, events.ReasonFor(tt.err), tt.err.Error())
	}
}

func TestEventTypes(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Account.Opened", events.AccountOpened{}.Type())
	assert.Equal(t, "Funds.Deposited", events.FundsDeposited{}.Type())
	assert.Equal(t, "Funds.Withdrawn", events.FundsWithdrawn{}.Type())
	assert.Equal(t, "Operation.Rejected", events.OperationRejected{}.Type())
}
