// Package desk is the terminal front end of the ledger. It offers the teller's
// operations either as interactive forms or as a line-oriented script.
//
// Both modes fill the same State and hand it to Desk.Submit, so a command typed
// in a script behaves exactly like the matching form.
package desk

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	accountsvc "github.com/amirasaad/ledgerdesk/pkg/service/account"
	"github.com/fatih/color"
)

// Action names an operation offered at the desk.
type Action string

// Desk actions. The string values are the script command names.
const (
	ActionCreate   Action = "create"
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
	ActionSearch   Action = "search"
	ActionList     Action = "list"
	ActionLog      Action = "log"
	ActionClear    Action = "clear"
	ActionHelp     Action = "help"
	ActionQuit     Action = "quit"
)

// ErrUsage is returned for a script line that cannot be read as a command.
var ErrUsage = errors.New("usage")

// ErrQuit is returned by Submit for ActionQuit.
var ErrQuit = errors.New("quit")

// State holds the desk's form fields and the current view.
type State struct {
	Number  string
	Name    string
	Type    string
	Amount  string
	Keyword string // filter applied to the accounts table
	Focus   string // account whose transactions are shown
}

// Reset clears every field and the view, like the Clear button.
func (s *State) Reset() {
	*s = State{}
}

// Desk runs desk actions against the account service and prints the results.
type Desk struct {
	svc    *accountsvc.Service
	out    io.Writer
	layout string

	ok    *color.Color
	fail  *color.Color
	muted *color.Color
}

// Option configures a Desk.
type Option func(*Desk)

// WithTimeLayout sets the timestamp layout of transaction lines.
func WithTimeLayout(layout string) Option {
	return func(d *Desk) {
		if layout != "" {
			d.layout = layout
		}
	}
}

// New returns a Desk that writes to out.
func New(svc *accountsvc.Service, out io.Writer, opts ...Option) *Desk {
	d := &Desk{
		svc:    svc,
		out:    out,
		layout: account.DefaultTimeLayout,
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		muted:  color.New(color.Faint),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Submit performs action using the fields of st and returns the text to show.
// Search, log and clear change the view held in st. A failed action leaves the
// ledger unchanged.
func (d *Desk) Submit(ctx context.Context, st *State, action Action) (string, error) {
	switch action {
	case ActionCreate:
		acc, err := d.svc.CreateAccount(ctx, accountsvc.CreateAccountInput{
			Number: st.Number,
			Name:   st.Name,
			Type:   st.Type,
		})
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Account Created Successfully: #%d %s (%s)", acc.Number(), acc.Name(), acc.Type()), nil
	case ActionDeposit:
		_, entry, err := d.svc.Deposit(ctx, st.Number, st.Amount)
		if err != nil {
			return "", err
		}
		return entry.Description, nil
	case ActionWithdraw:
		_, entry, err := d.svc.Withdraw(ctx, st.Number, st.Amount)
		if err != nil {
			return "", err
		}
		return entry.Description, nil
	case ActionSearch:
		return RenderAccounts(d.svc.Search(ctx, st.Keyword)), nil
	case ActionList:
		st.Keyword = ""
		return RenderAccounts(d.svc.List(ctx)), nil
	case ActionLog:
		entries, err := d.svc.Transactions(ctx, st.Number)
		if err != nil {
			return "", err
		}
		st.Focus = st.Number
		return RenderTransactions(entries, d.layout), nil
	case ActionClear:
		st.Reset()
		return "Cleared", nil
	case ActionHelp:
		return Usage(), nil
	case ActionQuit:
		return "", ErrQuit
	default:
		return "", fmt.Errorf("%w: unknown command %q, try help", ErrUsage, action)
	}
}

// Execute reads one script line into st, submits it and prints the outcome:
// green on success, red on failure. Blank lines and # comments do nothing.
func (d *Desk) Execute(ctx context.Context, st *State, line string) error {
	action, ok, err := ParseLine(st, line)
	if !ok {
		return nil
	}
	if err != nil {
		d.printError(err)
		return err
	}
	msg, err := d.Submit(ctx, st, action)
	if err != nil {
		if !errors.Is(err, ErrQuit) {
			d.printError(err)
		}
		return err
	}
	d.print(action, msg)
	return nil
}

// Run executes every line of r as a script. Failed lines are reported and the
// session continues; a quit command ends it early.
func (d *Desk) Run(ctx context.Context, r io.Reader) error {
	st := &State{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := d.Execute(ctx, st, scanner.Text()); errors.Is(err, ErrQuit) {
			return nil
		}
	}
	return scanner.Err()
}

func (d *Desk) print(action Action, msg string) {
	switch action {
	case ActionCreate, ActionDeposit, ActionWithdraw:
		d.ok.Fprintln(d.out, msg) //nolint:errcheck
	case ActionClear:
		d.muted.Fprintln(d.out, msg) //nolint:errcheck
	default:
		fmt.Fprintln(d.out, msg) //nolint:errcheck
	}
}

func (d *Desk) printError(err error) {
	d.fail.Fprintln(d.out, "Error: "+err.Error()) //nolint:errcheck
}

// ParseLine reads a script line into st. ok is false for blank lines and comments.
func ParseLine(st *State, line string) (action Action, ok bool, err error) {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return "", false, nil
	}
	action = Action(strings.ToLower(fields[0]))
	args := fields[1:]
	switch action {
	case ActionCreate:
		if len(args) < 3 {
			return action, true, usageError(action)
		}
		st.Number = args[0]
		st.Name = strings.Join(args[1:len(args)-1], " ")
		st.Type = args[len(args)-1]
	case ActionDeposit, ActionWithdraw:
		if len(args) != 2 {
			return action, true, usageError(action)
		}
		st.Number, st.Amount = args[0], args[1]
	case ActionLog:
		if len(args) != 1 {
			return action, true, usageError(action)
		}
		st.Number = args[0]
	case ActionSearch:
		// Everything after the command word, spaces included, is the keyword.
		rest := strings.TrimLeft(line, " \t")
		rest = rest[len(fields[0]):]
		if rest != "" && (rest[0] == ' ' || rest[0] == '\t') {
			rest = rest[1:]
		}
		st.Keyword = rest
	case "exit":
		action = ActionQuit
	}
	return action, true, nil
}

var commandUsage = []struct {
	action Action
	args   string
	about  string
}{
	{ActionCreate, "<number> <name...> <type>", "open an account (type: Savings or Current)"},
	{ActionDeposit, "<number> <amount>", "deposit an amount"},
	{ActionWithdraw, "<number> <amount>", "withdraw an amount"},
	{ActionSearch, "[keyword]", "list accounts whose number or name contains keyword"},
	{ActionList, "", "list all accounts"},
	{ActionLog, "<number>", "show an account's transactions"},
	{ActionClear, "", "reset the search filter and selection"},
	{ActionHelp, "", "show this help"},
	{ActionQuit, "", "end the session"},
}

func usageError(action Action) error {
	for _, u := range commandUsage {
		if u.action == action {
			return fmt.Errorf("%w: %s %s", ErrUsage, action, u.args)
		}
	}
	return ErrUsage
}

// Usage lists the script commands.
func Usage() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, u := range commandUsage {
		fmt.Fprintf(&b, "  %-9s %-26s %s\n", u.action, u.args, u.about)
	}
	b.WriteString("Lines starting with # are ignored.")
	return b.String()
}
