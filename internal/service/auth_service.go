package service

import (
	"fmt"

	"github.com/CSE237SP25/chaching/internal/bank"
)

type AuthService struct {
	bank *bank.Bank
}

func NewAuthService(b *bank.Bank) *AuthService {
	return &AuthService{bank: b}
}

// Register creates a new user with a default checking account and
// returns it so the driver can treat a fresh registration as a login.
func (as *AuthService) Register(username, password string) (*bank.User, error) {
	if err := as.bank.Register(username, password); err != nil {
		return nil, err
	}

	u, ok := as.bank.User(username)
	if !ok {
		return nil, fmt.Errorf("registered user %q not found", username)
	}
	return u, nil
}

func (as *AuthService) Login(username, password string) (*bank.User, error) {
	return as.bank.Login(username, password)
}
