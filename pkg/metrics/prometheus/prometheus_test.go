package prometheus_test

import (
	"strings"
	"testing"

	ledgerprom "github.com/amirasaad/ledgerdesk/pkg/metrics/prometheus"
	"github.com/amirasaad/ledgerdesk/pkg/money"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	pc, err := ledgerprom.NewPrometheusCollector("ledgerdesk", reg)
	require.NoError(t, err)

	pc.RecordAccountOpened("Savings")
	pc.RecordAccountOpened("Current")
	pc.RecordDeposit(money.MustFromSmallestUnit(50000, money.INRCurrency))
	pc.RecordWithdrawal(money.MustFromSmallestUnit(20000, money.INRCurrency))
	pc.RecordRejected("withdraw", "insufficient_funds")

	expected := `
# HELP ledgerdesk_accounts Current number of accounts in the ledger
# TYPE ledgerdesk_accounts gauge
ledgerdesk_accounts 2
# HELP ledgerdesk_transaction_amount_total Sum of transaction amounts in the main currency unit per kind and currency
# TYPE ledgerdesk_transaction_amount_total counter
ledgerdesk_transaction_amount_total{currency="INR",kind="deposit"} 500
ledgerdesk_transaction_amount_total{currency="INR",kind="withdrawal"} 200
# HELP ledgerdesk_rejected_operations_total Total number of rejected operations per operation and reason
# TYPE ledgerdesk_rejected_operations_total counter
ledgerdesk_rejected_operations_total{operation="withdraw",reason="insufficient_funds"} 1
`
	err = testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"ledgerdesk_accounts",
		"ledgerdesk_transaction_amount_total",
		"ledgerdesk_rejected_operations_total",
	)
	assert.NoError(t, err)
}

func TestPrometheusCollector_DuplicateRegistration(t *testing.T) {
	t.Parallel()
	reg := prometheus.NewRegistry()
	_, err := ledgerprom.NewPrometheusCollector("ledgerdesk", reg)
	require.NoError(t, err)
	_, err = ledgerprom.NewPrometheusCollector("ledgerdesk", reg)
	assert.Error(t, err)
}
