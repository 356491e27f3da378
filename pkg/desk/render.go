package desk

import (
	"strconv"
	"strings"

	"github.com/amirasaad/ledgerdesk/pkg/domain/account"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	primaryColor = lipgloss.Color("#4682B4") // steel blue
	lightGrey    = lipgloss.AdaptiveColor{Light: "#F0F0F0", Dark: "#3A3A3A"}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	evenStyle   = cellStyle.Background(lightGrey)
	amountStyle = cellStyle.Align(lipgloss.Right)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)
)

var accountHeaders = []string{"Account #", "Name", "Type", "Balance"}

// RenderAccounts draws the accounts table.
func RenderAccounts(rows []account.Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(primaryColor)).
		Headers(accountHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == len(accountHeaders)-1:
				return amountStyle
			case row%2 == 0:
				return evenStyle
			default:
				return cellStyle
			}
		})
	for _, r := range rows {
		t.Row(strconv.FormatInt(r.Number, 10), r.Name, r.Type.String(), r.Balance.Format())
	}
	if len(rows) == 0 {
		return titleStyle.Render("Accounts") + "\n" + t.String() + "\n(no accounts)"
	}
	return titleStyle.Render("Accounts") + "\n" + t.String()
}

// RenderTransactions draws a transaction log panel, one line per entry.
func RenderTransactions(entries []account.Entry, layout string) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.Format(layout))
	}
	return titleStyle.Render("Transactions") + "\n" + panelStyle.Render(strings.Join(lines, "\n"))
}
