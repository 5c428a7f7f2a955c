// Package service is the thin surface the console driver talks to. It
// composes the bank core with the session configuration and returns
// data and tagged errors; rendering stays in the driver.
package service

import (
	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/config"
)

type Service struct {
	Auth     *AuthService
	Accounts *AccountService
	Admin    *AdminService
}

func NewService(b *bank.Bank, cfg *config.Config) *Service {
	return &Service{
		Auth:     NewAuthService(b),
		Accounts: NewAccountService(b, cfg),
		Admin:    NewAdminService(b),
	}
}
