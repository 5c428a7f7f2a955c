package bank

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"fmt"

	"github.com/google/uuid"
)

const saltSize = 16

// User is an identity with salted credentials and one or more owned
// accounts keyed by account id. Exactly one account is current at a
// time whenever any account exists; the raw password is never retained.
type User struct {
	username string
	digest   []byte
	salt     []byte

	accounts map[uuid.UUID]*Account
	order    []uuid.UUID
	current  uuid.UUID // uuid.Nil when no accounts remain

	admin bool
}

// NewUser creates a user with a fresh random salt, a SHA-512 digest of
// salt followed by the raw password, and a default checking account
// that is made current.
func NewUser(username, password string) (*User, error) {
	return newUser(username, password, NewChecking(), false)
}

// NewUserWithSavings creates a user whose initial account is the given
// savings account instead of a default checking account.
func NewUserWithSavings(username, password string, savings *Account) (*User, error) {
	return newUser(username, password, savings, false)
}

func newUser(username, password string, initial *Account, admin bool) (*User, error) {
	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}

	u := &User{
		username: username,
		salt:     salt,
		digest:   hashPassword(salt, password),
		accounts: make(map[uuid.UUID]*Account),
		admin:    admin,
	}
	u.accounts[initial.ID()] = initial
	u.order = append(u.order, initial.ID())
	u.current = initial.ID()
	return u, nil
}

// Username returns the user's unique name within a bank.
func (u *User) Username() string {
	return u.username
}

// AddAccount inserts an account into the user's set. The current
// account is left unchanged.
func (u *User) AddAccount(a *Account) {
	if _, ok := u.accounts[a.ID()]; ok {
		return
	}
	u.accounts[a.ID()] = a
	u.order = append(u.order, a.ID())
}

// RemoveAccount detaches the account with the given id. If it was the
// current account, another owned account becomes current; when none
// remain, the user has no current account. The account's history is
// not freed.
func (u *User) RemoveAccount(id uuid.UUID) {
	if _, ok := u.accounts[id]; !ok {
		return
	}
	delete(u.accounts, id)
	for i, aid := range u.order {
		if aid == id {
			u.order = append(u.order[:i], u.order[i+1:]...)
			break
		}
	}
	if u.current == id {
		u.current = uuid.Nil
		if len(u.order) > 0 {
			u.current = u.order[0]
		}
	}
}

// SwitchToAccount makes the account with the given id current.
func (u *User) SwitchToAccount(id uuid.UUID) error {
	if _, ok := u.accounts[id]; !ok {
		return ErrNoSuchAccount
	}
	u.current = id
	return nil
}

// CurrentAccount returns the currently selected account, or nil when
// the user owns no accounts.
func (u *User) CurrentAccount() *Account {
	return u.accounts[u.current]
}

// Accounts returns the owned accounts in insertion order.
func (u *User) Accounts() []*Account {
	out := make([]*Account, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.accounts[id])
	}
	return out
}

// Account returns the owned account with the given id.
func (u *User) Account(id uuid.UUID) (*Account, bool) {
	a, ok := u.accounts[id]
	return a, ok
}

// VerifyPassword recomputes the digest for the given raw password and
// compares it against the stored one.
func (u *User) VerifyPassword(password string) bool {
	return subtle.ConstantTimeCompare(u.digest, hashPassword(u.salt, password)) == 1
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.admin
}

func hashPassword(salt []byte, password string) []byte {
	h := sha512.New()
	h.Write(salt)
	h.Write([]byte(password))
	return h.Sum(nil)
}

func generateSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", ErrHashUnavailable)
	}
	return salt, nil
}
