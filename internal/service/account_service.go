package service

import (
	"strings"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/config"
	"github.com/google/uuid"
)

type AccountService struct {
	bank *bank.Bank
	cfg  *config.Config
}

func NewAccountService(b *bank.Bank, cfg *config.Config) *AccountService {
	return &AccountService{bank: b, cfg: cfg}
}

// CreateAccount opens a new account for the user and makes it current.
// Savings accounts pick up the configured withdrawal limit and interest
// rate; an empty nickname leaves the derived label in place.
func (as *AccountService) CreateAccount(u *bank.User, kind bank.AccountKind, nickname string) (*bank.Account, error) {
	var acc *bank.Account
	if kind == bank.KindSavings {
		acc = bank.NewSavingsWithRate(as.cfg.Defaults.InterestRate)
		acc.SetWithdrawalLimit(as.cfg.Defaults.WithdrawalLimit)
	} else {
		acc = bank.NewChecking()
	}

	if nickname = strings.TrimSpace(nickname); nickname != "" {
		acc.SetNickname(nickname)
	}

	u.AddAccount(acc)
	if err := u.SwitchToAccount(acc.ID()); err != nil {
		return nil, err
	}
	return acc, nil
}

func (as *AccountService) SwitchAccount(u *bank.User, id uuid.UUID) error {
	return u.SwitchToAccount(id)
}

func (as *AccountService) RemoveAccount(u *bank.User, id uuid.UUID) error {
	if _, ok := u.Account(id); !ok {
		return bank.ErrNoSuchAccount
	}
	u.RemoveAccount(id)
	return nil
}

func (as *AccountService) ListAccounts(u *bank.User) []*bank.Account {
	return u.Accounts()
}

// Deposit adds amount to the user's current account and returns the new
// balance.
func (as *AccountService) Deposit(u *bank.User, amount float64) (float64, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return 0, bank.ErrNoSuchAccount
	}
	if err := acc.Deposit(amount); err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

// Withdraw removes amount from the user's current account and returns
// the new balance.
func (as *AccountService) Withdraw(u *bank.User, amount float64) (float64, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return 0, bank.ErrNoSuchAccount
	}
	if err := acc.Withdraw(amount); err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

func (as *AccountService) Balance(u *bank.User) (float64, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return 0, bank.ErrNoSuchAccount
	}
	return acc.Balance(), nil
}

func (as *AccountService) Transactions(u *bank.User) ([]bank.Transaction, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return nil, bank.ErrNoSuchAccount
	}
	return acc.Transactions(), nil
}

func (as *AccountService) FailedWithdrawals(u *bank.User) ([]bank.Transaction, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return nil, bank.ErrNoSuchAccount
	}
	return acc.FailedWithdrawals(), nil
}

// AccrueInterest applies the interest accrual to the user's current
// account and returns the new balance. Checking accounts are left
// untouched.
func (as *AccountService) AccrueInterest(u *bank.User) (float64, error) {
	acc := u.CurrentAccount()
	if acc == nil {
		return 0, bank.ErrNoSuchAccount
	}
	if err := acc.AccrueInterest(); err != nil {
		return 0, err
	}
	return acc.Balance(), nil
}

// ResetWithdrawals clears the monthly withdrawal counter on the user's
// current account, standing in for the month-boundary scheduler.
func (as *AccountService) ResetWithdrawals(u *bank.User) error {
	acc := u.CurrentAccount()
	if acc == nil {
		return bank.ErrNoSuchAccount
	}
	acc.ResetWithdrawalCount()
	return nil
}

// Transfer moves amount from the user's current account to the named
// recipient's current account.
func (as *AccountService) Transfer(u *bank.User, toUsername string, amount float64) error {
	return as.bank.TransferFunds(u.Username(), toUsername, amount)
}
