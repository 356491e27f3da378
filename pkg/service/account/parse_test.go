package account_test

import (
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/domain"
	"github.com/amirasaad/ledgerdesk/pkg/money"
	accountsvc "github.com/amirasaad/ledgerdesk/pkg/service/account"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNumber(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text   string
		want   int64
		reason domain.Reason
	}{
		{"100", 100, ""},
		{"  42 ", 42, ""},
		{"", 0, domain.ReasonRequired},
		{"   ", 0, domain.ReasonRequired},
		{"abc", 0, domain.ReasonNotANumber},
		{"12.5", 0, domain.ReasonNotANumber},
		{"99999999999999999999", 0, domain.ReasonNotANumber},
		{"0", 0, domain.ReasonNotPositive},
		{"-7", 0, domain.ReasonNotPositive},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := accountsvc.ParseNumber(tt.text)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "account number", ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestParseAmount(t *testing.T) {
	t.Parallel()
	tests := []struct {
		text   string
		want   int64
		reason domain.Reason
	}{
		{"500", 50000, ""},
		{"0.5", 50, ""},
		{"0", 0, ""},
		{"-5", -500, ""},
		{"", 0, domain.ReasonRequired},
		{"ten", 0, domain.ReasonNotANumber},
		{"1.234", 0, domain.ReasonTooPrecise},
		{"999999999999999999999", 0, domain.ReasonInvalid},
		{"1e3", 0, domain.ReasonNotANumber},
		{"1e9999999", 0, domain.ReasonNotANumber},
		{"1e-9999999", 0, domain.ReasonNotANumber},
		{"1e999999999", 0, domain.ReasonNotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := accountsvc.ParseAmount(tt.text, money.INRCurrency)
			if tt.reason == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got.Amount())
				return
			}
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "amount", ve.Field)
			assert.Equal(t, tt.reason, ve.Reason)
		})
	}
}

func TestParseAmount_OverflowIsInvalidAmount(t *testing.T) {
	t.Parallel()
	_, err := accountsvc.ParseAmount("92233720368547758.08", money.INRCurrency)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
