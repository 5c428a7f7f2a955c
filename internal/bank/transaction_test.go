package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalAppend(t *testing.T) {
	j := NewJournal()

	require.NoError(t, j.Append(TxDeposit, 100))
	require.NoError(t, j.Append(TxWithdrawal, 40))
	require.NoError(t, j.Append(TxDeposit, 0))

	entries := j.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, TxDeposit, entries[0].Kind)
	assert.Equal(t, 100.0, entries[0].Amount)
	assert.Equal(t, TxWithdrawal, entries[1].Kind)
	assert.Equal(t, 0.0, entries[2].Amount)
	for _, e := range entries {
		assert.False(t, e.Timestamp.IsZero())
	}
}

func TestJournalAppendNegativeAmount(t *testing.T) {
	j := NewJournal()

	err := j.Append(TxDeposit, -1)
	require.ErrorIs(t, err, ErrInvalidAmount)
	assert.Zero(t, j.Len())
}

func TestJournalEntriesIsACopy(t *testing.T) {
	j := NewJournal()
	require.NoError(t, j.Append(TxDeposit, 10))

	entries := j.Entries()
	entries[0].Amount = 999

	assert.Equal(t, 10.0, j.Entries()[0].Amount)
}
