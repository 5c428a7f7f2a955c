package bank

// Bank is the in-memory registry of users, keyed by case-sensitive
// username. It mediates registration, authentication and cross-user
// operations. All access happens on the driver goroutine; no locking.
type Bank struct {
	users map[string]*User
	order []string
}

// NewBank returns an empty bank. Seeding the bootstrap admin is the
// caller's job (see app.NewApp).
func NewBank() *Bank {
	return &Bank{users: make(map[string]*User)}
}

// Register creates a new user with a default checking account and adds
// it to the registry. Empty usernames and passwords are rejected; a
// username collision leaves the registry untouched.
func (b *Bank) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}
	if _, ok := b.users[username]; ok {
		return ErrUserExists
	}
	u, err := NewUser(username, password)
	if err != nil {
		return err
	}
	b.insert(u)
	return nil
}

// RegisterUser adds a prebuilt user (including an admin) under its own
// username, with the same rules as Register. The user's existing
// credentials are kept as-is, so it can log in with its original
// password.
func (b *Bank) RegisterUser(u *User) error {
	if u == nil {
		return ErrInvalidCredentials
	}
	if u.Username() == "" {
		return ErrInvalidCredentials
	}
	if _, ok := b.users[u.Username()]; ok {
		return ErrUserExists
	}
	b.insert(u)
	return nil
}

func (b *Bank) insert(u *User) {
	b.users[u.Username()] = u
	b.order = append(b.order, u.Username())
}

// Login returns the user when the username exists and the password
// verifies. It reports the same ErrInvalidCredentials for both failure
// modes.
func (b *Bank) Login(username, password string) (*User, error) {
	u, ok := b.users[username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if !u.VerifyPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// User looks up a registered user by username.
func (b *Bank) User(username string) (*User, bool) {
	u, ok := b.users[username]
	return u, ok
}

// Users returns a snapshot of every registered user, each exactly once,
// in registration order.
func (b *Bank) Users() []*User {
	out := make([]*User, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.users[name])
	}
	return out
}

// AllUsersIfAdmin returns the user snapshot when the requester is an
// admin, and ErrUnauthorized otherwise.
func (b *Bank) AllUsersIfAdmin(requester *User) ([]*User, error) {
	if requester == nil || !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	return b.Users(), nil
}

// TotalSystemBalance sums the current-account balance of every
// registered user. Admin-only.
func (b *Bank) TotalSystemBalance(requester *User) (float64, error) {
	if requester == nil || !requester.IsAdmin() {
		return 0, ErrUnauthorized
	}
	var total float64
	for _, u := range b.Users() {
		if acc := u.CurrentAccount(); acc != nil {
			total += acc.Balance()
		}
	}
	return total, nil
}

// TransferFunds moves amount from the sender's current account to the
// recipient's current account. All preconditions are checked before any
// state changes: both users must exist with valid current accounts, the
// amount must be positive, and the sender's balance must be strictly
// greater than the amount. On success the sender's withdrawal and the
// recipient's deposit each journal exactly one entry.
func (b *Bank) TransferFunds(fromUsername, toUsername string, amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	sender, ok := b.users[fromUsername]
	if !ok {
		return ErrUsernameNotFound
	}
	recipient, ok := b.users[toUsername]
	if !ok {
		return ErrUsernameNotFound
	}

	from := sender.CurrentAccount()
	to := recipient.CurrentAccount()
	if from == nil || to == nil {
		return ErrNoSuchAccount
	}

	// The transfer comparison is deliberately stricter than the
	// account-level one: a sender holding exactly the amount is refused.
	if from.Balance() <= amount {
		return ErrInsufficientFunds
	}

	if err := from.Withdraw(amount); err != nil {
		// Funds were checked above, so this is a variant policy failure
		// such as the savings withdrawal cap. The deposit is not
		// attempted.
		return err
	}
	return to.Deposit(amount)
}
