package views

import (
	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/pterm/pterm"
)

// RenderUserList prints every registered user for the admin view.
func RenderUserList(users []*bank.User) {
	headers := []string{"Username", "Role", "Accounts"}
	tableData := pterm.TableData{headers}

	for _, u := range users {
		role := "user"
		if u.IsAdmin() {
			role = pterm.Cyan("admin")
		}
		tableData = append(tableData, []string{
			u.Username(),
			role,
			pterm.Sprintf("%d", len(u.Accounts())),
		})
	}

	pterm.DefaultSection.Printf("Registered Users")
	pterm.DefaultTable.WithHasHeader().WithData(tableData).Render()
	pterm.Info.Printf("Total: %d users\n", len(users))
}
