package cmd

import (
	"errors"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/errhandler"
	"github.com/CSE237SP25/chaching/internal/service"
	"github.com/CSE237SP25/chaching/internal/ui"
	"github.com/CSE237SP25/chaching/internal/ui/prompts"
	"github.com/CSE237SP25/chaching/internal/ui/views"
	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Menu entries for the logged-out, user and admin states.
const (
	menuRegister = "Register"
	menuLogin    = "Login"
	menuExit     = "Exit"

	menuDeposit       = "Deposit"
	menuWithdraw      = "Withdraw"
	menuBalance       = "Check current balance"
	menuTransactions  = "Review transaction log"
	menuFailed        = "Check failed withdrawal log"
	menuTransfer      = "Transfer funds to another user"
	menuListAccounts  = "List accounts"
	menuCreateAccount = "Create a new account"
	menuSwitchAccount = "Switch account"
	menuRemoveAccount = "Remove an account"
	menuAccrue        = "Accrue interest (savings)"
	menuResetLimit    = "Reset withdrawal count (savings)"
	menuLogout        = "Logout"

	menuAdminUsers   = "View all users"
	menuAdminTotal   = "View total system balance"
	menuAdminCreate  = "Add a new admin"
	menuAdminJournal = "View all transactions"
)

type sessionRunner struct {
	svc  *service.Service
	user *bank.User
}

func NewStartCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start an interactive banking session",
		Long: `Start an interactive banking session.

Register or log in, then manage accounts, deposit and withdraw funds,
transfer money to other users and review transaction journals.
Administrators get a separate menu with bank-wide views.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &sessionRunner{svc: svc}
			return runner.Run()
		},
	}
}

func (r *sessionRunner) Run() error {
	ui.PrintL1Title("Welcome to ChaChing!")

	for {
		var err error
		var done bool

		switch {
		case r.user == nil:
			done, err = r.loggedOutMenu()
		case r.user.IsAdmin():
			err = r.adminMenu()
		default:
			err = r.userMenu()
		}

		if err != nil {
			errhandler.HandleError(err)
			continue
		}
		if done {
			pterm.Println("Thanks for using ChaChing! Goodbye.")
			return nil
		}
	}
}

func (r *sessionRunner) loggedOutMenu() (bool, error) {
	choice, err := prompts.PromptMenu("Please log in or register.", []string{
		menuRegister, menuLogin, menuExit,
	})
	if err != nil {
		return false, err
	}

	switch choice {
	case menuRegister:
		return false, r.register()
	case menuLogin:
		return false, r.login()
	default:
		return true, nil
	}
}

func (r *sessionRunner) register() error {
	username, err := prompts.PromptUsername("Choose a username:")
	if err != nil {
		return err
	}
	password, err := prompts.PromptPassword("Choose a password:")
	if err != nil {
		return err
	}

	user, err := r.svc.Auth.Register(username, password)
	if err != nil {
		if errors.Is(err, bank.ErrUserExists) {
			pterm.Warning.Printf("User %s already exists in the database.\n", username)
			return nil
		}
		return err
	}

	r.user = user
	pterm.Success.Printf("User %s successfully added.\n", username)
	return nil
}

func (r *sessionRunner) login() error {
	username, err := prompts.PromptUsername("Username:")
	if err != nil {
		return err
	}
	password, err := prompts.PromptPassword("Password:")
	if err != nil {
		return err
	}

	user, err := r.svc.Auth.Login(username, password)
	if err != nil {
		if errors.Is(err, bank.ErrInvalidCredentials) {
			pterm.Warning.Println("Login failed. Try again.")
			return nil
		}
		return err
	}

	r.user = user
	pterm.Success.Printf("Welcome, %s!\n", username)
	return nil
}

func (r *sessionRunner) userMenu() error {
	options := []string{
		menuDeposit, menuWithdraw, menuBalance,
		menuTransactions, menuFailed, menuTransfer,
		menuListAccounts, menuCreateAccount, menuSwitchAccount, menuRemoveAccount,
	}
	if acc := r.user.CurrentAccount(); acc != nil && acc.Kind() == bank.KindSavings {
		options = append(options, menuAccrue, menuResetLimit)
	}
	options = append(options, menuLogout)

	choice, err := prompts.PromptMenu("Please select an option:", options)
	if err != nil {
		return err
	}

	switch choice {
	case menuDeposit:
		return r.deposit()
	case menuWithdraw:
		return r.withdraw()
	case menuBalance:
		balance, err := r.svc.Accounts.Balance(r.user)
		if err != nil {
			return err
		}
		pterm.Info.Printf("Current Balance: $%s\n", utils.FormatAmount(balance))
	case menuTransactions:
		txs, err := r.svc.Accounts.Transactions(r.user)
		if err != nil {
			return err
		}
		views.RenderTransactionList("Transaction Log", txs)
	case menuFailed:
		txs, err := r.svc.Accounts.FailedWithdrawals(r.user)
		if err != nil {
			return err
		}
		views.RenderTransactionList("Failed Withdrawals", txs)
	case menuTransfer:
		return r.transfer()
	case menuListAccounts:
		views.RenderAccountList(r.svc.Accounts.ListAccounts(r.user), r.user.CurrentAccount())
	case menuCreateAccount:
		return r.createAccount()
	case menuSwitchAccount:
		return r.switchAccount()
	case menuRemoveAccount:
		return r.removeAccount()
	case menuAccrue:
		balance, err := r.svc.Accounts.AccrueInterest(r.user)
		if err != nil {
			return err
		}
		pterm.Success.Printf("Interest accrued. Current Balance: $%s\n", utils.FormatAmount(balance))
	case menuResetLimit:
		if err := r.svc.Accounts.ResetWithdrawals(r.user); err != nil {
			return err
		}
		pterm.Success.Println("Withdrawal count reset.")
	case menuLogout:
		pterm.Println("Logging out...")
		r.user = nil
	}
	return nil
}

func (r *sessionRunner) deposit() error {
	amount, err := prompts.PromptAmount("Amount to deposit:")
	if err != nil {
		return err
	}

	balance, err := r.svc.Accounts.Deposit(r.user, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Deposited $%s\n", utils.FormatAmount(amount))
	pterm.Info.Printf("Current Balance: $%s\n", utils.FormatAmount(balance))
	return nil
}

func (r *sessionRunner) withdraw() error {
	amount, err := prompts.PromptAmount("Amount to withdraw:")
	if err != nil {
		return err
	}

	balance, err := r.svc.Accounts.Withdraw(r.user, amount)
	if err != nil {
		switch {
		case errors.Is(err, bank.ErrInsufficientFunds):
			pterm.Warning.Println("Insufficient balance.")
			return nil
		case errors.Is(err, bank.ErrWithdrawalLimitReached):
			pterm.Warning.Println("Withdrawal limit reached for this month.")
			return nil
		}
		return err
	}

	pterm.Success.Printf("Withdrew $%s\n", utils.FormatAmount(amount))
	pterm.Info.Printf("Current Balance: $%s\n", utils.FormatAmount(balance))
	return nil
}

func (r *sessionRunner) transfer() error {
	recipient, err := prompts.PromptUsername("Recipient username:")
	if err != nil {
		return err
	}
	amount, err := prompts.PromptAmount("Amount to transfer:")
	if err != nil {
		return err
	}

	if err := r.svc.Accounts.Transfer(r.user, recipient, amount); err != nil {
		switch {
		case errors.Is(err, bank.ErrUsernameNotFound):
			pterm.Warning.Println("Sender or recipient does not exist.")
			return nil
		case errors.Is(err, bank.ErrInsufficientFunds):
			pterm.Warning.Println("You do not have sufficient funds to transfer the specified amount.")
			return nil
		case errors.Is(err, bank.ErrWithdrawalLimitReached):
			pterm.Warning.Println("Withdrawal limit reached for this month.")
			return nil
		}
		return err
	}

	pterm.Success.Printf("Transferred $%s to %s\n", utils.FormatAmount(amount), recipient)
	return nil
}

func (r *sessionRunner) createAccount() error {
	kind, err := prompts.PromptAccountKind()
	if err != nil {
		return err
	}
	nickname, err := prompts.PromptNickname()
	if err != nil {
		return err
	}

	acc, err := r.svc.Accounts.CreateAccount(r.user, kind, nickname)
	if err != nil {
		return err
	}

	pterm.Success.Printf("New account created and selected: %s\n", acc.Nickname())
	return nil
}

func (r *sessionRunner) switchAccount() error {
	accounts := r.svc.Accounts.ListAccounts(r.user)
	if len(accounts) == 0 {
		pterm.Warning.Println("You have no existing accounts.")
		return nil
	}

	id, err := prompts.PromptAccountSelection(accounts, "Select an account:")
	if err != nil {
		return err
	}

	if err := r.svc.Accounts.SwitchAccount(r.user, id); err != nil {
		return err
	}

	pterm.Success.Printf("Using account: %s\n", r.user.CurrentAccount().Nickname())
	return nil
}

func (r *sessionRunner) removeAccount() error {
	accounts := r.svc.Accounts.ListAccounts(r.user)
	if len(accounts) == 0 {
		pterm.Warning.Println("You have no existing accounts.")
		return nil
	}

	id, err := prompts.PromptAccountSelection(accounts, "Select an account to remove:")
	if err != nil {
		return err
	}

	confirm, err := prompts.PromptConfirm("Remove this account? Its history is kept but it is detached from you.", false)
	if err != nil {
		return err
	}
	if !confirm {
		pterm.Println("Account removal cancelled.")
		return nil
	}

	if err := r.svc.Accounts.RemoveAccount(r.user, id); err != nil {
		return err
	}

	pterm.Success.Println("Account removed.")
	return nil
}

func (r *sessionRunner) adminMenu() error {
	ui.PrintL2Title("ADMIN MENU")

	choice, err := prompts.PromptMenu("Please select an option:", []string{
		menuAdminUsers, menuAdminTotal, menuAdminCreate, menuAdminJournal, menuLogout,
	})
	if err != nil {
		return err
	}

	switch choice {
	case menuAdminUsers:
		users, err := r.svc.Admin.ListUsers(r.user)
		if err != nil {
			return err
		}
		views.RenderUserList(users)
	case menuAdminTotal:
		total, err := r.svc.Admin.TotalBalance(r.user)
		if err != nil {
			return err
		}
		pterm.Info.Printf("Total balance across all accounts: $%s\n", utils.FormatAmount(total))
	case menuAdminCreate:
		return r.createAdmin()
	case menuAdminJournal:
		txs, err := r.svc.Admin.AllTransactions(r.user)
		if err != nil {
			return err
		}
		views.RenderTransactionList("All Transactions", txs)
	case menuLogout:
		pterm.Println("Logging out...")
		r.user = nil
	}
	return nil
}

func (r *sessionRunner) createAdmin() error {
	username, err := prompts.PromptUsername("New admin's username:")
	if err != nil {
		return err
	}
	password, err := prompts.PromptPassword("New admin's password:")
	if err != nil {
		return err
	}

	admin, err := r.svc.Admin.CreateAdmin(r.user, username, password)
	if err != nil {
		if errors.Is(err, bank.ErrUserExists) {
			pterm.Warning.Printf("User %s already exists in the database.\n", username)
			return nil
		}
		return err
	}

	pterm.Success.Printf("New admin %s added successfully.\n", admin.Username())
	return nil
}
