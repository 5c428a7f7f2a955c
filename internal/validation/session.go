package validation

import (
	"fmt"
	"strings"

	"github.com/CSE237SP25/chaching/internal/constants"
	"github.com/CSE237SP25/chaching/internal/utils"
)

// ValidateUsername checks a username entered at the console before it
// reaches the bank.
func ValidateUsername(val string) error {
	name := strings.TrimSpace(val)

	if name == "" {
		return fmt.Errorf("username can't be empty")
	}

	if strings.ContainsAny(name, " \t") {
		return fmt.Errorf("username cannot contain whitespace")
	}

	if len(name) > constants.MaxUsernameLen {
		return fmt.Errorf("username too long (max %d characters)", constants.MaxUsernameLen)
	}
	return nil
}

// ValidatePassword checks a raw password for the registration prompts.
func ValidatePassword(val string) error {
	if val == "" {
		return fmt.Errorf("password can't be empty")
	}
	return nil
}

// ValidateAmount checks the console input for deposit, withdrawal and
// transfer prompts.
func ValidateAmount(val string) error {
	_, err := utils.ParseAmount(val)
	return err
}

// ValidateNickname checks an optional account nickname. Empty is
// allowed; the account derives a label from its id.
func ValidateNickname(val string) error {
	if len(strings.TrimSpace(val)) > constants.MaxNicknameLen {
		return fmt.Errorf("nickname too long (max %d characters)", constants.MaxNicknameLen)
	}
	return nil
}
