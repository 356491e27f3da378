package currency_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amirasaad/ledgerdesk/internal/fixtures/currency"
	"github.com/amirasaad/ledgerdesk/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "currencies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadCurrencyMetaCSV(t *testing.T) {
	path := writeCSV(t, `code,name,symbol,decimals,country,region,active
USD,US Dollar,$,2,United States,Americas,true
EUR,Euro,€,2,Germany,Europe,true
bad row
XX,Broken,?,2,Nowhere,None,true
OMR,Omani Rial,OMR ,three,Oman,Middle East,true`)

	metas, err := currency.LoadCurrencyMetaCSV(path)
	require.NoError(t, err)
	require.Len(t, metas, 2)

	usd := metas[0]
	assert.Equal(t, money.USD, usd.Currency.Code)
	assert.Equal(t, "$", usd.Currency.Symbol)
	assert.Equal(t, 2, usd.Currency.Decimals)
	assert.Equal(t, "US Dollar", usd.Name)
	assert.Equal(t, "Americas", usd.Region)
	assert.True(t, usd.Active)
}

func TestLoadCurrencyMetaCSV_Embedded(t *testing.T) {
	metas, err := currency.LoadCurrencyMetaCSV("")
	require.NoError(t, err)
	require.NotEmpty(t, metas)
	assert.Equal(t, money.INR, metas[0].Currency.Code)
	assert.Equal(t, "₹", metas[0].Currency.Symbol)
}

func TestLoadCurrencyMetaCSV_Errors(t *testing.T) {
	_, err := currency.LoadCurrencyMetaCSV(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)

	_, err = currency.LoadCurrencyMetaCSV(writeCSV(t, "code,name\nUSD,US Dollar\n"))
	assert.ErrorContains(t, err, "expected at least 7 columns")
}

func TestRegisterActive(t *testing.T) {
	path := writeCSV(t, `code,name,symbol,decimals,country,region,active
KWD,Kuwaiti Dinar,KD ,3,Kuwait,Middle East,true
VEF,Venezuelan Bolivar,Bs ,2,Venezuela,Americas,false`)

	n, err := currency.RegisterActive(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	kwd, err := money.Lookup("kwd")
	require.NoError(t, err)
	assert.Equal(t, 3, kwd.Decimals)
	assert.Equal(t, "KD ", kwd.Symbol)

	m, err := money.Parse("1.234", kwd)
	require.NoError(t, err)
	assert.Equal(t, "KD 1.234", m.Format())
}
