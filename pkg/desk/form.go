package desk

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	accountsvc "github.com/amirasaad/ledgerdesk/pkg/service/account"
	"github.com/charmbracelet/huh"
)

// menu lists the interactive actions in the order the buttons appear.
var menu = []huh.Option[Action]{
	huh.NewOption("Create Account", ActionCreate),
	huh.NewOption("Deposit", ActionDeposit),
	huh.NewOption("Withdraw", ActionWithdraw),
	huh.NewOption("Search", ActionSearch),
	huh.NewOption("View Transactions", ActionLog),
	huh.NewOption("Clear", ActionClear),
	huh.NewOption("Quit", ActionQuit),
}

// Interactive runs the desk as a sequence of terminal forms until the user
// quits or aborts. The accounts table, filtered by the current search, and the
// focused account's transactions are redrawn before every prompt.
func (d *Desk) Interactive(ctx context.Context) error {
	st := &State{}
	for {
		d.screen(ctx, st)

		var action Action
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[Action]().
				Title("Account Operations").
				Options(menu...).
				Value(&action),
		)).WithTheme(huh.ThemeCharm()).RunWithContext(ctx)
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}

		form := d.formFor(ctx, st, action)
		if form != nil {
			err := form.WithTheme(huh.ThemeCharm()).RunWithContext(ctx)
			if errors.Is(err, huh.ErrUserAborted) {
				continue
			}
			if err != nil {
				return err
			}
		}

		msg, err := d.Submit(ctx, st, action)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case err != nil:
			d.printError(err)
		case action == ActionSearch || action == ActionLog:
			// shown by the next redraw
		default:
			d.print(action, msg)
		}
	}
}

// formFor builds the input form for action, bound to the fields of st.
// It returns nil for actions that take no input.
func (d *Desk) formFor(ctx context.Context, st *State, action Action) *huh.Form {
	numberInput := huh.NewInput().
		Title("Account Number").
		Value(&st.Number).
		Validate(func(s string) error {
			_, err := accountsvc.ParseNumber(s)
			return err
		})
	amountInput := huh.NewInput().
		Title(fmt.Sprintf("Amount (%s)", d.svc.Currency().Code)).
		Value(&st.Amount).
		Validate(func(s string) error {
			_, err := accountsvc.ParseAmount(s, d.svc.Currency())
			return err
		})

	switch action {
	case ActionCreate:
		if st.Type == "" {
			st.Type = account.Savings.String()
		}
		types := make([]huh.Option[string], 0, len(account.Types()))
		for _, t := range account.Types() {
			types = append(types, huh.NewOption(t.String(), t.String()))
		}
		return huh.NewForm(huh.NewGroup(
			numberInput,
			huh.NewInput().Title("Customer Name").Value(&st.Name),
			huh.NewSelect[string]().Title("Account Type").Options(types...).Value(&st.Type),
		))
	case ActionDeposit, ActionWithdraw:
		return huh.NewForm(huh.NewGroup(numberInput, amountInput))
	case ActionSearch:
		return huh.NewForm(huh.NewGroup(
			huh.NewInput().Title("Search").Description("Account number or name").Value(&st.Keyword),
		))
	case ActionLog:
		rows := d.svc.Search(ctx, st.Keyword)
		if len(rows) == 0 {
			return nil
		}
		options := make([]huh.Option[string], 0, len(rows))
		for _, r := range rows {
			n := strconv.FormatInt(r.Number, 10)
			options = append(options, huh.NewOption(fmt.Sprintf("#%s %s", n, r.Name), n))
		}
		return huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().Title("Account").Options(options...).Value(&st.Number),
		))
	default:
		return nil
	}
}

// screen prints the accounts table and, when an account is focused, its log.
func (d *Desk) screen(ctx context.Context, st *State) {
	fmt.Fprintln(d.out, RenderAccounts(d.svc.Search(ctx, st.Keyword))) //nolint:errcheck
	if st.Focus == "" {
		return
	}
	entries, err := d.svc.Transactions(ctx, st.Focus)
	if err != nil {
		st.Focus = ""
		return
	}
	fmt.Fprintln(d.out, RenderTransactions(entries, d.layout)) //nolint:errcheck
}
