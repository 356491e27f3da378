package account

import (
	"encoding/json"

	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
)

// CreateAccountRequest represents the request body for opening an account.
// Number accepts a JSON number or a numeric string.
type CreateAccountRequest struct {
	Number json.Number `json:"number" validate:"required"`
	Name   string      `json:"name" validate:"required,max=128"`
	Type   string      `json:"type" validate:"required"`
}

// AmountRequest represents the request body for a deposit or withdrawal.
// Amount is read as an exact decimal in the main currency unit.
type AmountRequest struct {
	Amount json.Number `json:"amount" validate:"required"`
}

// AccountDTO is the API response representation of an account.
type AccountDTO struct {
	Number           int64  `json:"number"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Balance          string `json:"balance"`
	BalanceFormatted string `json:"balance_formatted"`
	Currency         string `json:"currency"`
}

// TransactionDTO is the API response representation of a log entry.
type TransactionDTO struct {
	ID          string `json:"id"`
	Kind        string `json:"kind"`
	Amount      string `json:"amount"`
	Balance     string `json:"balance"`
	Timestamp   string `json:"timestamp"`
	Description string `json:"description"`
	Line        string `json:"line"`
}

// OperationResponseDTO is returned by deposit and withdraw.
type OperationResponseDTO struct {
	Account     AccountDTO     `json:"account"`
	Transaction TransactionDTO `json:"transaction"`
}

// ToAccountDTO maps a table row to an AccountDTO.
func ToAccountDTO(r account.Row) AccountDTO {
	return AccountDTO{
		Number:           r.Number,
		Name:             r.Name,
		Type:             r.Type.String(),
		Balance:          r.Balance.Plain(),
		BalanceFormatted: r.Balance.Format(),
		Currency:         r.Balance.CurrencyCode().String(),
	}
}

// ToTransactionDTO maps a log entry to a TransactionDTO, rendering times with layout.
func ToTransactionDTO(e account.Entry, layout string) TransactionDTO {
	return TransactionDTO{
		ID:          e.ID.String(),
		Kind:        string(e.Kind),
		Amount:      e.Amount.Plain(),
		Balance:     e.Balance.Plain(),
		Timestamp:   e.Timestamp.Format(layout),
		Description: e.Description,
		Line:        e.Format(layout),
	}
}
