package config

import (
	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/constants"
)

type Config struct {
	Admin      AdminConfig    `mapstructure:"admin"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

// AdminConfig overrides the bootstrap administrator seeded into the
// bank at startup.
type AdminConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// DefaultsConfig holds the savings parameters applied to accounts
// created during a session.
type DefaultsConfig struct {
	WithdrawalLimit int     `mapstructure:"withdrawal_limit"`
	InterestRate    float64 `mapstructure:"interest_rate"`
}

func NewDefault() *Config {
	return &Config{
		Admin: AdminConfig{
			Username: constants.BootstrapAdminUsername,
			Password: constants.BootstrapAdminPassword,
		},
		Defaults: DefaultsConfig{
			WithdrawalLimit: bank.DefaultWithdrawalLimit,
			InterestRate:    bank.DefaultInterestRate,
		},
	}
}
