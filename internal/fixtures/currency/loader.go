// Package currency loads the currency table the desk can book in.
package currency

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/amirasaad/ledgerdesk/pkg/money"
)

//go:embed meta.csv
var metaCSV string

const expectedColumns = 7

// Meta describes one row of the currency table.
type Meta struct {
	Currency money.Currency
	Name     string
	Country  string
	Region   string
	Active   bool
}

// LoadCurrencyMetaCSV loads currency metadata from a CSV file or embedded content.
// If path is empty, it uses the embedded CSV content.
func LoadCurrencyMetaCSV(path string) ([]Meta, error) {
	var r io.Reader

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close() //nolint:errcheck
		r = f
	} else {
		r = strings.NewReader(metaCSV)
	}

	return parseCurrencyMetaCSV(r)
}

func parseCurrencyMetaCSV(r io.Reader) ([]Meta, error) {
	csvReader := csv.NewReader(r)
	csvReader.FieldsPerRecord = -1
	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("invalid CSV format: missing header")
	}
	if len(records[0]) < expectedColumns {
		return nil, fmt.Errorf(
			"invalid CSV format: expected at least %d columns, got %d",
			expectedColumns,
			len(records[0]),
		)
	}

	metas := make([]Meta, 0, len(records)-1)
	for _, rec := range records[1:] {
		// Skip malformed rows
		if len(rec) < expectedColumns {
			continue
		}
		decimals, err := strconv.Atoi(strings.TrimSpace(rec[3]))
		if err != nil {
			continue
		}
		c := money.Currency{
			Code:     money.Code(strings.ToUpper(strings.TrimSpace(rec[0]))),
			Decimals: decimals,
			Symbol:   rec[2],
		}
		if !c.IsValid() {
			continue
		}
		metas = append(metas, Meta{
			Currency: c,
			Name:     rec[1],
			Country:  rec[4],
			Region:   rec[5],
			Active:   strings.EqualFold(strings.TrimSpace(rec[6]), "true"),
		})
	}
	return metas, nil
}

// RegisterActive loads the table at path (or the embedded one) and registers
// every active currency with the money package. It returns how many were registered.
func RegisterActive(path string) (int, error) {
	metas, err := LoadCurrencyMetaCSV(path)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range metas {
		if !m.Active {
			continue
		}
		if err := money.Register(m.Currency); err != nil {
			return n, fmt.Errorf("register %s: %w", m.Currency.Code, err)
		}
		n++
	}
	return n, nil
}
