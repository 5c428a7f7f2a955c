package service

import (
	"testing"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *bank.Bank) {
	t.Helper()
	b := bank.NewBank()
	owner, err := bank.NewAdmin("owner", "adminpw")
	require.NoError(t, err)
	require.NoError(t, b.RegisterUser(owner))
	return NewService(b, config.NewDefault()), b
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestService(t)

	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())

	got, err := svc.Auth.Login("alice", "pw")
	require.NoError(t, err)
	assert.Same(t, u, got)

	_, err = svc.Auth.Register("alice", "pw")
	require.ErrorIs(t, err, bank.ErrUserExists)
}

func TestDepositWithdrawFlow(t *testing.T) {
	svc, _ := newTestService(t)
	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)

	balance, err := svc.Accounts.Deposit(u, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance)

	balance, err = svc.Accounts.Withdraw(u, 40)
	require.NoError(t, err)
	assert.Equal(t, 60.0, balance)

	_, err = svc.Accounts.Withdraw(u, 1000)
	require.ErrorIs(t, err, bank.ErrInsufficientFunds)

	txs, err := svc.Accounts.Transactions(u)
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	failed, err := svc.Accounts.FailedWithdrawals(u)
	require.NoError(t, err)
	assert.Len(t, failed, 1)
}

func TestCreateAccountAppliesConfiguredDefaults(t *testing.T) {
	b := bank.NewBank()
	cfg := config.NewDefault()
	cfg.Defaults.WithdrawalLimit = 5
	cfg.Defaults.InterestRate = 0.02
	svc := NewService(b, cfg)

	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)

	acc, err := svc.Accounts.CreateAccount(u, bank.KindSavings, "vacation")
	require.NoError(t, err)

	assert.Equal(t, bank.KindSavings, acc.Kind())
	assert.Equal(t, "vacation", acc.Nickname())
	assert.Equal(t, 5, acc.WithdrawalLimit())
	assert.Equal(t, 0.02, acc.InterestRate())

	// The new account becomes current.
	assert.Equal(t, acc.ID(), u.CurrentAccount().ID())
	assert.Len(t, svc.Accounts.ListAccounts(u), 2)
}

func TestCreateCheckingAccount(t *testing.T) {
	svc, _ := newTestService(t)
	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)

	acc, err := svc.Accounts.CreateAccount(u, bank.KindChecking, "")
	require.NoError(t, err)
	assert.Equal(t, bank.KindChecking, acc.Kind())
	assert.NotEmpty(t, acc.Nickname())
}

func TestSwitchAndRemoveAccount(t *testing.T) {
	svc, _ := newTestService(t)
	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	first := u.CurrentAccount()

	acc, err := svc.Accounts.CreateAccount(u, bank.KindSavings, "")
	require.NoError(t, err)

	require.NoError(t, svc.Accounts.SwitchAccount(u, first.ID()))
	assert.Equal(t, first.ID(), u.CurrentAccount().ID())

	require.ErrorIs(t, svc.Accounts.SwitchAccount(u, uuid.New()), bank.ErrNoSuchAccount)

	require.NoError(t, svc.Accounts.RemoveAccount(u, acc.ID()))
	require.ErrorIs(t, svc.Accounts.RemoveAccount(u, acc.ID()), bank.ErrNoSuchAccount)
	assert.Len(t, svc.Accounts.ListAccounts(u), 1)
}

func TestOperationsWithoutCurrentAccount(t *testing.T) {
	svc, _ := newTestService(t)
	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	require.NoError(t, svc.Accounts.RemoveAccount(u, u.CurrentAccount().ID()))

	_, err = svc.Accounts.Deposit(u, 10)
	require.ErrorIs(t, err, bank.ErrNoSuchAccount)
	_, err = svc.Accounts.Balance(u)
	require.ErrorIs(t, err, bank.ErrNoSuchAccount)
	_, err = svc.Accounts.Transactions(u)
	require.ErrorIs(t, err, bank.ErrNoSuchAccount)
}

func TestSavingsTools(t *testing.T) {
	svc, _ := newTestService(t)
	u, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)

	acc, err := svc.Accounts.CreateAccount(u, bank.KindSavings, "")
	require.NoError(t, err)
	acc.SetWithdrawalLimit(1)

	_, err = svc.Accounts.Deposit(u, 100)
	require.NoError(t, err)
	_, err = svc.Accounts.Withdraw(u, 10)
	require.NoError(t, err)
	_, err = svc.Accounts.Withdraw(u, 10)
	require.ErrorIs(t, err, bank.ErrWithdrawalLimitReached)

	require.NoError(t, svc.Accounts.ResetWithdrawals(u))
	_, err = svc.Accounts.Withdraw(u, 10)
	require.NoError(t, err)

	balance, err := svc.Accounts.AccrueInterest(u)
	require.NoError(t, err)
	assert.InDelta(t, 80.80, balance, 1e-9)
}

func TestTransfer(t *testing.T) {
	svc, _ := newTestService(t)
	alice, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	bob, err := svc.Auth.Register("bob", "pw2")
	require.NoError(t, err)

	_, err = svc.Accounts.Deposit(alice, 60)
	require.NoError(t, err)

	require.NoError(t, svc.Accounts.Transfer(alice, "bob", 20))
	assert.Equal(t, 40.0, alice.CurrentAccount().Balance())
	assert.Equal(t, 20.0, bob.CurrentAccount().Balance())

	require.ErrorIs(t, svc.Accounts.Transfer(alice, "nobody", 5), bank.ErrUsernameNotFound)
}

func TestAdminOperations(t *testing.T) {
	svc, b := newTestService(t)
	owner, _ := b.User("owner")

	alice, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	_, err = svc.Accounts.Deposit(alice, 40)
	require.NoError(t, err)

	users, err := svc.Admin.ListUsers(owner)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	total, err := svc.Admin.TotalBalance(owner)
	require.NoError(t, err)
	assert.InDelta(t, 40.0, total, 1e-9)

	all, err := svc.Admin.AllTransactions(owner)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.Admin.ListUsers(alice)
	require.ErrorIs(t, err, bank.ErrUnauthorized)
	_, err = svc.Admin.TotalBalance(alice)
	require.ErrorIs(t, err, bank.ErrUnauthorized)
	_, err = svc.Admin.AllTransactions(alice)
	require.ErrorIs(t, err, bank.ErrUnauthorized)
}

func TestCreateAdminRegistersWithBank(t *testing.T) {
	svc, b := newTestService(t)
	owner, _ := b.User("owner")

	ops, err := svc.Admin.CreateAdmin(owner, "ops", "pw")
	require.NoError(t, err)
	assert.True(t, ops.IsAdmin())

	got, err := svc.Auth.Login("ops", "pw")
	require.NoError(t, err)
	assert.Same(t, ops, got)

	// Colliding with an existing username fails at registration.
	_, err = svc.Admin.CreateAdmin(owner, "ops", "pw")
	require.ErrorIs(t, err, bank.ErrUserExists)

	alice, err := svc.Auth.Register("alice", "pw")
	require.NoError(t, err)
	_, err = svc.Admin.CreateAdmin(alice, "x", "y")
	require.ErrorIs(t, err, bank.ErrUnauthorized)
}
