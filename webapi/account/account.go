// Package account serves the desk operations over HTTP.
package account

import (
	"log/slog"

	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	accountsvc "github.com/amirasaad/ledgerdesk/pkg/service/account"
	"github.com/amirasaad/ledgerdesk/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// Routes registers HTTP routes for account-related operations.
//
// Routes:
//   - POST   /accounts                       : Open an account.
//   - GET    /accounts?q=                    : Search accounts; an empty q lists all.
//   - GET    /accounts/:number               : Retrieve one account.
//   - POST   /accounts/:number/deposit       : Deposit funds into the account.
//   - POST   /accounts/:number/withdraw      : Withdraw funds from the account.
//   - GET    /accounts/:number/transactions  : List the account's transaction log.
func Routes(app *fiber.App, accountSvc *accountsvc.Service, timeLayout string) {
	if timeLayout == "" {
		timeLayout = account.DefaultTimeLayout
	}
	app.Post("/accounts", CreateAccount(accountSvc))
	app.Get("/accounts", SearchAccounts(accountSvc))
	app.Get("/accounts/:number", GetAccount(accountSvc))
	app.Post("/accounts/:number/deposit", Deposit(accountSvc, timeLayout))
	app.Post("/accounts/:number/withdraw", Withdraw(accountSvc, timeLayout))
	app.Get("/accounts/:number/transactions", GetTransactions(accountSvc, timeLayout))
}

// CreateAccount returns a Fiber handler for opening an account.
// @Summary Open an account
// @Description Opens an account with a unique number, a customer name and a type (Savings or Current). The balance starts at zero and the log holds one "opened" entry.
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body CreateAccountRequest true "Account details"
// @Success 201 {object} common.Response{data=AccountDTO} "Account created"
// @Failure 400 {object} common.ProblemDetails "Invalid request"
// @Failure 409 {object} common.ProblemDetails "Account number already taken"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts [post]
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateAccountRequest](c)
		if input == nil {
			return err // error response already written
		}
		a, err := accountSvc.CreateAccount(c.UserContext(), accountsvc.CreateAccountInput{
			Number: input.Number.String(),
			Name:   input.Name,
			Type:   input.Type,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", ToAccountDTO(a.Row()))
	}
}

// SearchAccounts returns a Fiber handler listing accounts that match the q query parameter.
// @Summary Search accounts
// @Description Lists accounts whose number contains q or whose name contains q, ignoring case. An empty q lists every account in opening order.
// @Tags accounts
// @Produce json
// @Param q query string false "Keyword, matched exactly as sent"
// @Success 200 {object} common.Response{data=[]AccountDTO} "Matching accounts"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts [get]
// The keyword is used exactly as sent.
func SearchAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows := accountSvc.Search(c.UserContext(), c.Query("q"))
		dtos := make([]AccountDTO, 0, len(rows))
		for _, r := range rows {
			dtos = append(dtos, ToAccountDTO(r))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts fetched", dtos)
	}
}

// GetAccount returns a Fiber handler for retrieving one account.
// @Summary Get an account
// @Description Returns the account with the given number.
// @Tags accounts
// @Produce json
// @Param number path int true "Account number"
// @Success 200 {object} common.Response{data=AccountDTO} "Account"
// @Failure 400 {object} common.ProblemDetails "Invalid account number"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number} [get]
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		a, err := accountSvc.GetAccount(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to get account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account fetched", ToAccountDTO(a.Row()))
	}
}

// Deposit returns a Fiber handler for depositing an amount into an account.
// @Summary Deposit funds
// @Description Adds a positive amount, given in the main currency unit with at most two decimals, to the balance and appends one log entry.
// @Tags accounts
// @Accept json
// @Produce json
// @Param number path int true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response{data=OperationResponseDTO} "Deposit successful"
// @Failure 400 {object} common.ProblemDetails "Invalid amount"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts/{number}/deposit [post]
func Deposit(accountSvc *accountsvc.Service, timeLayout string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		a, entry, err := accountSvc.Deposit(c.UserContext(), c.Params("number"), input.Amount.String())
		if err != nil {
			slog.Debug("Deposit handler failed", "number", c.Params("number"), "error", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", OperationResponseDTO{
			Account:     ToAccountDTO(a.Row()),
			Transaction: ToTransactionDTO(entry, timeLayout),
		})
	}
}

// Withdraw returns a Fiber handler for withdrawing an amount from an account.
// @Summary Withdraw funds
// @Description Removes a positive amount from the balance and appends one log entry. The balance never goes below zero.
// @Tags accounts
// @Accept json
// @Produce json
// @Param number path int true "Account number"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} common.Response{data=OperationResponseDTO} "Withdrawal successful"
// @Failure 400 {object} common.ProblemDetails "Invalid amount"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Failure 422 {object} common.ProblemDetails "Insufficient funds"
// @Failure 429 {object} common.ProblemDetails "Too many requests"
// @Router /accounts/{number}/withdraw [post]
func Withdraw(accountSvc *accountsvc.Service, timeLayout string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[AmountRequest](c)
		if input == nil {
			return err
		}
		a, entry, err := accountSvc.Withdraw(c.UserContext(), c.Params("number"), input.Amount.String())
		if err != nil {
			slog.Debug("Withdraw handler failed", "number", c.Params("number"), "error", err)
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", OperationResponseDTO{
			Account:     ToAccountDTO(a.Row()),
			Transaction: ToTransactionDTO(entry, timeLayout),
		})
	}
}

// GetTransactions returns a Fiber handler for listing an account's transaction log, oldest first.
// @Summary List transactions
// @Description Returns the account's transaction log, oldest first. Each entry carries the balance after the operation and a display line.
// @Tags accounts
// @Produce json
// @Param number path int true "Account number"
// @Success 200 {object} common.Response{data=[]TransactionDTO} "Transaction log"
// @Failure 400 {object} common.ProblemDetails "Invalid account number"
// @Failure 404 {object} common.ProblemDetails "Account not found"
// @Router /accounts/{number}/transactions [get]
func GetTransactions(accountSvc *accountsvc.Service, timeLayout string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entries, err := accountSvc.Transactions(c.UserContext(), c.Params("number"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to list transactions", err)
		}
		dtos := make([]TransactionDTO, 0, len(entries))
		for _, e := range entries {
			dtos = append(dtos, ToTransactionDTO(e, timeLayout))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions fetched", dtos)
	}
}
