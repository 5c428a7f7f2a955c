package prompts

import (
	"fmt"
	"strings"

	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/CSE237SP25/chaching/internal/validation"
)

// PromptUsername asks for a username with the standard validation.
func PromptUsername(message string) (string, error) {
	name, err := PromptInput(message, validation.ValidateUsername)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(name), nil
}

// PromptPassword asks for a password without echoing it.
func PromptPassword(message string) (string, error) {
	password, err := PromptSecret(message, validation.ValidatePassword)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return password, nil
}

// PromptAmount asks for a monetary amount and parses it.
func PromptAmount(message string) (float64, error) {
	input, err := PromptInput(message, validation.ValidateAmount)
	if err != nil {
		return 0, fmt.Errorf("input cancelled: %w", err)
	}
	return utils.ParseAmount(input)
}

// PromptMenu shows a titled menu and returns the chosen entry.
func PromptMenu(title string, options []string) (string, error) {
	selected, err := PromptSelect(title, options)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return selected, nil
}
