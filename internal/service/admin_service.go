package service

import (
	"github.com/CSE237SP25/chaching/internal/bank"
)

type AdminService struct {
	bank *bank.Bank
}

func NewAdminService(b *bank.Bank) *AdminService {
	return &AdminService{bank: b}
}

func (as *AdminService) ListUsers(requester *bank.User) ([]*bank.User, error) {
	return as.bank.AllUsersIfAdmin(requester)
}

func (as *AdminService) TotalBalance(requester *bank.User) (float64, error) {
	return as.bank.TotalSystemBalance(requester)
}

// CreateAdmin produces a new administrator on behalf of requester and
// registers it with the bank in one step.
func (as *AdminService) CreateAdmin(requester *bank.User, username, password string) (*bank.User, error) {
	admin, err := bank.CreateAdmin(requester, username, password)
	if err != nil {
		return nil, err
	}
	if err := as.bank.RegisterUser(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// AllTransactions returns every success-journal entry across the
// institution. The aggregation itself does not re-check privileges, so
// the gate lives here.
func (as *AdminService) AllTransactions(requester *bank.User) ([]bank.Transaction, error) {
	if requester == nil || !requester.IsAdmin() {
		return nil, bank.ErrUnauthorized
	}
	return bank.AllTransactions(as.bank), nil
}
