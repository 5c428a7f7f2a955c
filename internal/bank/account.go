package bank

import (
	"fmt"

	"github.com/google/uuid"
)

// AccountKind distinguishes the account variants. Checking inherits the
// base deposit/withdraw behavior verbatim; savings adds a monthly
// withdrawal cap and interest accrual.
type AccountKind string

const (
	KindChecking AccountKind = "checking"
	KindSavings  AccountKind = "savings"
)

const (
	// DefaultWithdrawalLimit caps savings withdrawals per month.
	DefaultWithdrawalLimit = 3
	// DefaultInterestRate is the savings accrual rate (1%).
	DefaultInterestRate = 0.01

	nicknameIDPrefixLen = 8
)

// Account is a balance holder with two journals: successful movements
// and refused withdrawals. Variant-specific policy hangs off Kind
// rather than a subtype; the savings fields are zero for checking
// accounts.
type Account struct {
	id       uuid.UUID
	kind     AccountKind
	nickname string
	balance  float64

	journal *Journal
	failed  *Journal

	withdrawals     int
	withdrawalLimit int
	interestRate    float64
}

// NewChecking creates a checking account with a zero balance.
func NewChecking() *Account {
	return &Account{
		id:      uuid.New(),
		kind:    KindChecking,
		journal: NewJournal(),
		failed:  NewJournal(),
	}
}

// NewSavings creates a savings account with a zero balance, the default
// withdrawal limit and the default interest rate.
func NewSavings() *Account {
	return NewSavingsWithRate(DefaultInterestRate)
}

// NewSavingsWithRate creates a savings account with a custom interest
// rate. The rate is not validated at this layer.
func NewSavingsWithRate(rate float64) *Account {
	return &Account{
		id:              uuid.New(),
		kind:            KindSavings,
		journal:         NewJournal(),
		failed:          NewJournal(),
		withdrawalLimit: DefaultWithdrawalLimit,
		interestRate:    rate,
	}
}

// ID returns the process-unique account identifier.
func (a *Account) ID() uuid.UUID {
	return a.id
}

// Kind reports the account variant.
func (a *Account) Kind() AccountKind {
	return a.kind
}

// Nickname returns the stored nickname, or a deterministic label
// derived from a short prefix of the id when none is set.
func (a *Account) Nickname() string {
	if a.nickname != "" {
		return a.nickname
	}
	return fmt.Sprintf("account-%s", a.id.String()[:nicknameIDPrefixLen])
}

// SetNickname assigns a human-readable label to the account.
func (a *Account) SetNickname(nickname string) {
	a.nickname = nickname
}

// Balance returns the current balance.
func (a *Account) Balance() float64 {
	return a.balance
}

// SetBalance overrides the balance without journaling. Administrative
// hatch only; normal flows go through Deposit and Withdraw.
func (a *Account) SetBalance(balance float64) {
	a.balance = balance
}

// Deposit adds amount to the balance and records it in the success
// journal. Depositing zero is accepted and recorded.
func (a *Account) Deposit(amount float64) error {
	if err := a.journal.Append(TxDeposit, amount); err != nil {
		return err
	}
	a.balance += amount
	return nil
}

// Withdraw removes amount from the balance. Withdrawing the exact
// balance succeeds; anything above it is refused with
// ErrInsufficientFunds and recorded in the failure journal. A savings
// account that has exhausted its monthly limit fails with
// ErrWithdrawalLimitReached before balance or journals are touched.
func (a *Account) Withdraw(amount float64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if a.kind == KindSavings && a.withdrawals >= a.withdrawalLimit {
		return ErrWithdrawalLimitReached
	}
	if a.balance < amount {
		a.failed.Append(TxFailedWithdrawal, amount)
		return ErrInsufficientFunds
	}
	a.balance -= amount
	a.journal.Append(TxWithdrawal, amount)
	if a.kind == KindSavings {
		a.withdrawals++
	}
	return nil
}

// Transactions returns the success journal entries in order.
func (a *Account) Transactions() []Transaction {
	return a.journal.Entries()
}

// FailedWithdrawals returns the refused-withdrawal entries in order.
func (a *Account) FailedWithdrawals() []Transaction {
	return a.failed.Entries()
}

// AccrueInterest deposits balance multiplied by the interest rate so
// the accrual shows up in the success journal. Only savings accounts
// accrue; on a checking account this is a no-op.
func (a *Account) AccrueInterest() error {
	if a.kind != KindSavings {
		return nil
	}
	return a.Deposit(a.balance * a.interestRate)
}

// ResetWithdrawalCount clears the monthly withdrawal counter. Intended
// to be called at a month boundary by an external scheduler.
func (a *Account) ResetWithdrawalCount() {
	a.withdrawals = 0
}

// SetWithdrawalLimit replaces the monthly withdrawal cap. Not validated
// at this layer.
func (a *Account) SetWithdrawalLimit(limit int) {
	a.withdrawalLimit = limit
}

// SetInterestRate replaces the accrual rate. Not validated at this
// layer.
func (a *Account) SetInterestRate(rate float64) {
	a.interestRate = rate
}

// WithdrawalCount reports the withdrawals made since the last reset.
func (a *Account) WithdrawalCount() int {
	return a.withdrawals
}

// WithdrawalLimit reports the monthly withdrawal cap.
func (a *Account) WithdrawalLimit() int {
	return a.withdrawalLimit
}

// InterestRate reports the accrual rate.
func (a *Account) InterestRate() float64 {
	return a.interestRate
}
