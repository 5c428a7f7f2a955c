package views

import (
	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/pterm/pterm"
)

// RenderTransactionList prints journal entries in insertion order.
func RenderTransactionList(title string, transactions []bank.Transaction) {
	pterm.DefaultSection.Printf("%s", title)

	if len(transactions) == 0 {
		pterm.Info.Println("No transactions found.")
		return
	}

	headers := []string{"#", "Kind", "Amount", "Time"}
	tableData := pterm.TableData{headers}

	for i, tx := range transactions {
		amount := utils.FormatAmount(tx.Amount)

		var coloredAmount string
		switch tx.Kind {
		case bank.TxDeposit:
			coloredAmount = pterm.Green("+" + amount)
		case bank.TxWithdrawal:
			coloredAmount = pterm.Red("-" + amount)
		default:
			coloredAmount = pterm.Gray(amount)
		}

		tableData = append(tableData, []string{
			pterm.Sprintf("%d", i+1),
			string(tx.Kind),
			coloredAmount,
			tx.Timestamp.Format("2006-01-02 15:04:05"),
		})
	}

	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d transactions\n", len(transactions))
}
