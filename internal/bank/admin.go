package bank

// NewAdmin creates a user with the administrator role. It is intended
// for the bootstrap seed registered at bank construction; afterwards
// new admins go through CreateAdmin.
func NewAdmin(username, password string) (*User, error) {
	return newUser(username, password, NewChecking(), true)
}

// CreateAdmin produces a new administrator on behalf of requester. The
// requester must itself be an admin; username and password must be
// non-empty. The new admin still has to be registered with a bank.
func CreateAdmin(requester *User, username, password string) (*User, error) {
	if requester == nil || !requester.IsAdmin() {
		return nil, ErrUnauthorized
	}
	if username == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	return NewAdmin(username, password)
}

// AllTransactions concatenates every success-journal entry of every
// account of every user in b, in bank-iteration order, then
// account-iteration order, then journal order. A nil bank yields nil.
// No privilege check is performed here; callers gate on IsAdmin.
func AllTransactions(b *Bank) []Transaction {
	if b == nil {
		return nil
	}
	var out []Transaction
	for _, u := range b.Users() {
		for _, a := range u.Accounts() {
			out = append(out, a.Transactions()...)
		}
	}
	return out
}
