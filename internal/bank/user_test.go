package bank

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserHasDefaultCheckingAccount(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)

	assert.Equal(t, "alice", u.Username())
	assert.False(t, u.IsAdmin())

	acc := u.CurrentAccount()
	require.NotNil(t, acc)
	assert.Equal(t, KindChecking, acc.Kind())
	assert.Len(t, u.Accounts(), 1)
}

func TestNewUserWithSavings(t *testing.T) {
	savings := NewSavings()
	u, err := NewUserWithSavings("bob", "pw", savings)
	require.NoError(t, err)

	require.NotNil(t, u.CurrentAccount())
	assert.Equal(t, savings.ID(), u.CurrentAccount().ID())
	assert.Equal(t, KindSavings, u.CurrentAccount().Kind())
}

func TestVerifyPassword(t *testing.T) {
	u, err := NewUser("alice", "correct horse")
	require.NoError(t, err)

	assert.True(t, u.VerifyPassword("correct horse"))
	assert.False(t, u.VerifyPassword("battery staple"))
	assert.False(t, u.VerifyPassword(""))
}

func TestSaltsDiffer(t *testing.T) {
	u1, err := NewUser("alice", "pw")
	require.NoError(t, err)
	u2, err := NewUser("bob", "pw")
	require.NoError(t, err)

	// Same raw password, fresh salts: the digests must not collide.
	assert.NotEqual(t, u1.digest, u2.digest)
}

func TestAddAccountKeepsCurrent(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)
	first := u.CurrentAccount()

	extra := NewSavings()
	u.AddAccount(extra)

	assert.Len(t, u.Accounts(), 2)
	assert.Equal(t, first.ID(), u.CurrentAccount().ID())
}

func TestSwitchToAccount(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)

	extra := NewSavings()
	u.AddAccount(extra)

	require.NoError(t, u.SwitchToAccount(extra.ID()))
	assert.Equal(t, extra.ID(), u.CurrentAccount().ID())

	// Switching to the current account is a no-op.
	require.NoError(t, u.SwitchToAccount(extra.ID()))
	assert.Equal(t, extra.ID(), u.CurrentAccount().ID())
}

func TestSwitchToUnknownAccount(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)
	before := u.CurrentAccount().ID()

	err = u.SwitchToAccount(uuid.New())
	require.ErrorIs(t, err, ErrNoSuchAccount)
	assert.Equal(t, before, u.CurrentAccount().ID())
}

func TestRemoveAccount(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)
	first := u.CurrentAccount()

	extra := NewSavings()
	u.AddAccount(extra)
	require.NoError(t, u.SwitchToAccount(extra.ID()))

	u.RemoveAccount(extra.ID())
	assert.Len(t, u.Accounts(), 1)
	require.NotNil(t, u.CurrentAccount())
	assert.Equal(t, first.ID(), u.CurrentAccount().ID())
}

func TestRemoveLastAccountLeavesNoCurrent(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)

	u.RemoveAccount(u.CurrentAccount().ID())
	assert.Empty(t, u.Accounts())
	assert.Nil(t, u.CurrentAccount())
}

func TestAccountsInsertionOrder(t *testing.T) {
	u, err := NewUser("alice", "pw")
	require.NoError(t, err)

	second := NewSavings()
	third := NewChecking()
	u.AddAccount(second)
	u.AddAccount(third)

	accounts := u.Accounts()
	require.Len(t, accounts, 3)
	assert.Equal(t, second.ID(), accounts[1].ID())
	assert.Equal(t, third.ID(), accounts[2].ID())
}
