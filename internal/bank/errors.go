package bank

import "errors"

// Domain errors surfaced by the core. The driver maps these onto
// console messages; nothing in this package prints.
var (
	ErrInvalidAmount          = errors.New("amount must not be negative")
	ErrInsufficientFunds      = errors.New("insufficient funds")
	ErrWithdrawalLimitReached = errors.New("withdrawal limit reached for this month")
	ErrNoSuchAccount          = errors.New("account not found")
	ErrUnauthorized           = errors.New("admin privileges required")
	ErrUserExists             = errors.New("user already exists")

	// Login reports ErrInvalidCredentials for both unknown usernames and
	// wrong passwords so callers cannot probe for registered names. The
	// finer-grained errors below are used by operations that already know
	// the user exists (or must exist), such as transfers.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameNotFound   = errors.New("username not found")
	ErrPasswordIncorrect  = errors.New("password incorrect")

	ErrHashUnavailable = errors.New("password hashing unavailable")
)
