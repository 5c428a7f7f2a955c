package app

import (
	"fmt"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/config"
	"github.com/CSE237SP25/chaching/internal/service"
)

type App struct {
	Service *service.Service
	Bank    *bank.Bank
}

// NewApp builds the in-memory bank, seeds the bootstrap administrator
// from config and wires up the service layer.
func NewApp(cfg *config.Config) (*App, error) {
	b := bank.NewBank()

	owner, err := bank.NewAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to create bootstrap admin: %w", err)
	}
	if err := b.RegisterUser(owner); err != nil {
		return nil, fmt.Errorf("failed to register bootstrap admin: %w", err)
	}

	return &App{
		Service: service.NewService(b, cfg),
		Bank:    b,
	}, nil
}
