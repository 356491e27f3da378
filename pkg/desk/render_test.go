package desk_test

import (
	"strings"
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/desk"
	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	"github.com/amirasaad/ledgerdesk/pkg/money"
	"github.com/amirasaad/ledgerdesk/pkg/testutils"
	"github.com/stretchr/testify/assert"
)

func TestRenderAccounts(t *testing.T) {
	t.Parallel()
	rows := []account.Row{
		{Number: 1, Name: "Alice", Type: account.Savings, Balance: money.MustFromSmallestUnit(30000, money.INRCurrency)},
		{Number: 2, Name: "Bob", Type: account.Current, Balance: money.Zero(money.INRCurrency)},
	}
	out := desk.RenderAccounts(rows)
	for _, want := range []string{"Account #", "Name", "Type", "Balance", "Alice", "Savings", "₹300.00", "Bob", "₹0.00"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))

	assert.Contains(t, desk.RenderAccounts(nil), "(no accounts)")
}

func TestRenderTransactions(t *testing.T) {
	t.Parallel()
	entries := []account.Entry{
		{Timestamp: testutils.FixedTime, Description: "Account opened with balance ₹0.00"},
		{Timestamp: testutils.FixedTime, Description: "Deposited ₹5.00 | New Balance ₹5.00"},
	}
	out := desk.RenderTransactions(entries, "15:04")
	assert.Contains(t, out, "Transactions")
	assert.Contains(t, out, "[09:30] Account opened with balance ₹0.00")
	assert.Less(t, strings.Index(out, "opened"), strings.Index(out, "Deposited"))
}
