package account_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/ledgerdesk/pkg/testutils"
	accountweb "github.com/amirasaad/ledgerdesk/webapi/account"
	"github.com/amirasaad/ledgerdesk/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type accountResponse struct {
	Status  int                   `json:"status"`
	Message string                `json:"message"`
	Data    accountweb.AccountDTO `json:"data"`
}

type accountsResponse struct {
	Data []accountweb.AccountDTO `json:"data"`
}

type operationResponse struct {
	Data accountweb.OperationResponseDTO `json:"data"`
}

type transactionsResponse struct {
	Data []accountweb.TransactionDTO `json:"data"`
}

type AccountHandlerTestSuite struct {
	suite.Suite
	app *fiber.App
}

func (s *AccountHandlerTestSuite) SetupTest() {
	a := testutils.NewTestApp(nil)
	s.app = fiber.New()
	accountweb.Routes(s.app, a.AccountService, a.Config.Ledger.TimeFormat)
}

func (s *AccountHandlerTestSuite) request(method, path, body string) *http.Response {
	return testutils.MakeRequestWithApp(s.app, method, path, body)
}

func (s *AccountHandlerTestSuite) problem(resp *http.Response, status int) common.ProblemDetails {
	s.Require().Equal(status, resp.StatusCode)
	var pd common.ProblemDetails
	s.Require().NoError(testutils.DecodeJSON(resp, &pd))
	s.Equal(status, pd.Status)
	return pd
}

func (s *AccountHandlerTestSuite) create(number, name, typ string) {
	body := `{"number":` + number + `,"name":"` + name + `","type":"` + typ + `"}`
	resp := s.request(fiber.MethodPost, "/accounts", body)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)
	resp.Body.Close() //nolint:errcheck
}

func (s *AccountHandlerTestSuite) TestCreateAccount() {
	resp := s.request(fiber.MethodPost, "/accounts", `{"number":"100","name":"Priya","type":"Savings"}`)
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	var out accountResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &out))
	s.Equal(int64(100), out.Data.Number)
	s.Equal("Priya", out.Data.Name)
	s.Equal("Savings", out.Data.Type)
	s.Equal("0.00", out.Data.Balance)
	s.Equal("₹0.00", out.Data.BalanceFormatted)
	s.Equal("INR", out.Data.Currency)
}

func (s *AccountHandlerTestSuite) TestCreateAccount_Errors() {
	s.create("1", "Alice", "Savings")

	pd := s.problem(s.request(fiber.MethodPost, "/accounts", `{"number":1,"name":"Mallory","type":"Current"}`), fiber.StatusConflict)
	s.Equal("Failed to create account", pd.Title)

	s.problem(s.request(fiber.MethodPost, "/accounts", `{"number":"abc","name":"X","type":"Current"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts", `{"number":5,"name":"X","type":"Fixed"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts", `{"number":5,"type":"Savings"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts", `{"number":0,"name":"X","type":"Savings"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts", `not json`), fiber.StatusBadRequest)
}

func (s *AccountHandlerTestSuite) TestDepositWithdraw() {
	s.create("100", "Priya", "Savings")

	resp := s.request(fiber.MethodPost, "/accounts/100/deposit", `{"amount":"500.00"}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var dep operationResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &dep))
	s.Equal("500.00", dep.Data.Account.Balance)
	s.Equal("deposit", dep.Data.Transaction.Kind)
	s.Equal("[2025-03-14 09:30:00] Deposited ₹500.00 | New Balance ₹500.00", dep.Data.Transaction.Line)

	resp = s.request(fiber.MethodPost, "/accounts/100/withdraw", `{"amount":200}`)
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var wd operationResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &wd))
	s.Equal("₹300.00", wd.Data.Account.BalanceFormatted)
	s.Equal("200.00", wd.Data.Transaction.Amount)

	resp = s.request(fiber.MethodGet, "/accounts/100/transactions", "")
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)
	var txs transactionsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &txs))
	s.Require().Len(txs.Data, 3)
	s.Equal("opened", txs.Data[0].Kind)
	s.Equal("Account opened with balance ₹0.00", txs.Data[0].Description)
	s.Equal("withdrawal", txs.Data[2].Kind)
}

func (s *AccountHandlerTestSuite) TestDepositWithdraw_Errors() {
	s.create("7", "Raj", "Current")

	pd := s.problem(s.request(fiber.MethodPost, "/accounts/7/withdraw", `{"amount":"50.00"}`), fiber.StatusUnprocessableEntity)
	s.Equal("insufficient funds", pd.Detail)

	s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", `{"amount":"0"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", `{"amount":"-5"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", `{"amount":"1.001"}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", `{}`), fiber.StatusBadRequest)
	s.problem(s.request(fiber.MethodPost, "/accounts/99/deposit", `{"amount":"1"}`), fiber.StatusNotFound)
	s.problem(s.request(fiber.MethodPost, "/accounts/x/deposit", `{"amount":"1"}`), fiber.StatusBadRequest)

	// Exponent literals are valid JSON numbers but not amounts.
	for _, body := range []string{`{"amount":1e3}`, `{"amount":1e9999999}`, `{"amount":1e-9999999}`, `{"amount":"1e999999999"}`} {
		pd = s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", body), fiber.StatusBadRequest)
		s.Equal("amount is not a number", pd.Detail, body)
	}
	pd = s.problem(s.request(fiber.MethodPost, "/accounts/7/deposit", `{"amount":"92233720368547758.08"}`), fiber.StatusBadRequest)
	s.Equal("amount is invalid", pd.Detail)

	resp := s.request(fiber.MethodGet, "/accounts/7/transactions", "")
	var txs transactionsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &txs))
	s.Len(txs.Data, 1)
}

func (s *AccountHandlerTestSuite) TestSearchAndGet() {
	s.create("1", "Alice", "Savings")
	s.create("2", "Bob", "Current")

	resp := s.request(fiber.MethodGet, "/accounts", "")
	var all accountsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &all))
	s.Require().Len(all.Data, 2)
	s.Equal(int64(1), all.Data[0].Number)
	s.Equal(int64(2), all.Data[1].Number)

	resp = s.request(fiber.MethodGet, "/accounts?q=ALI", "")
	var found accountsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &found))
	s.Require().Len(found.Data, 1)
	s.Equal("Alice", found.Data[0].Name)

	resp = s.request(fiber.MethodGet, "/accounts?q=zzz", "")
	var none accountsResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &none))
	s.Empty(none.Data)

	resp = s.request(fiber.MethodGet, "/accounts/2", "")
	var one accountResponse
	s.Require().NoError(testutils.DecodeJSON(resp, &one))
	s.Equal("Bob", one.Data.Name)

	s.problem(s.request(fiber.MethodGet, "/accounts/3", ""), fiber.StatusNotFound)
	s.problem(s.request(fiber.MethodGet, "/accounts/3/transactions", ""), fiber.StatusNotFound)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
