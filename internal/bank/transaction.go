// Package bank holds the in-memory account and authorization model:
// users with salted credentials, checking and savings accounts with
// per-account transaction journals, and the bank registry that composes
// them. The package returns data and tagged errors only; presentation
// belongs to the console driver.
package bank

import "time"

// TransactionKind tags a single monetary event.
type TransactionKind string

const (
	TxDeposit          TransactionKind = "Deposit"
	TxWithdrawal       TransactionKind = "Withdrawal"
	TxFailedWithdrawal TransactionKind = "FailedWithdrawal"
)

// Transaction is an immutable record of one monetary event. Amount is
// never negative; Timestamp is the wall-clock instant of creation.
type Transaction struct {
	Kind      TransactionKind
	Amount    float64
	Timestamp time.Time
}

// Journal is an ordered, append-only sequence of transactions. Each
// account keeps two: one for money that moved, one for withdrawals that
// were attempted and refused.
type Journal struct {
	entries []Transaction
}

// NewJournal returns an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Append records a transaction stamped with the current instant.
// Negative amounts are rejected and nothing is recorded.
func (j *Journal) Append(kind TransactionKind, amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	j.entries = append(j.entries, Transaction{
		Kind:      kind,
		Amount:    amount,
		Timestamp: time.Now(),
	})
	return nil
}

// Entries returns the recorded transactions in insertion order. The
// returned slice is a copy; the journal itself cannot be rewritten.
func (j *Journal) Entries() []Transaction {
	out := make([]Transaction, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len reports the number of recorded transactions.
func (j *Journal) Len() int {
	return len(j.entries)
}
