package views

import (
	"fmt"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/pterm/pterm"
)

// RenderAccountList prints the user's accounts as a table, marking the
// currently selected one.
func RenderAccountList(accounts []*bank.Account, current *bank.Account) {
	headers := []string{"Nickname", "Type", "Balance", ""}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		marker := ""
		if current != nil && acc.ID() == current.ID() {
			marker = pterm.Cyan("current")
		}

		balance := utils.FormatAmount(acc.Balance())

		var coloredKind string
		switch acc.Kind() {
		case bank.KindSavings:
			coloredKind = pterm.Green(string(acc.Kind()))
			balance = fmt.Sprintf("%s (withdrawals %d/%d)", balance, acc.WithdrawalCount(), acc.WithdrawalLimit())
		default:
			coloredKind = pterm.Blue(string(acc.Kind()))
		}

		tableData = append(tableData, []string{acc.Nickname(), coloredKind, balance, marker})
	}

	pterm.DefaultSection.Printf("Your Accounts")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d accounts\n", len(accounts))
}
