package prompts

import (
	"fmt"
	"strings"

	"github.com/CSE237SP25/chaching/internal/bank"
	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/CSE237SP25/chaching/internal/validation"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"
)

// PromptAccountKind asks which account variant to open.
func PromptAccountKind() (bank.AccountKind, error) {
	options := []string{
		"Checking - unlimited withdrawals",
		"Savings - monthly withdrawal cap, accrues interest",
	}

	selected, err := PromptSelect("Account type:", options)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	if strings.HasPrefix(selected, "Savings") {
		return bank.KindSavings, nil
	}
	return bank.KindChecking, nil
}

// PromptNickname asks for an optional account nickname. Empty keeps the
// auto-derived label.
func PromptNickname() (string, error) {
	nickname, err := PromptInput("Nickname (optional):", validation.ValidateNickname)
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}
	return strings.TrimSpace(nickname), nil
}

// PromptAccountSelection lists the user's accounts with balances and
// returns the id of the chosen one.
func PromptAccountSelection(accounts []*bank.Account, message string) (uuid.UUID, error) {
	var options []huh.Option[string]
	byLabel := make(map[string]uuid.UUID)

	for _, acc := range accounts {
		label := fmt.Sprintf("%s (%s, balance %s)", acc.Nickname(), acc.Kind(), utils.FormatAmount(acc.Balance()))
		byLabel[label] = acc.ID()
		options = append(options, huh.NewOption(label, label))
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(message).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return uuid.Nil, fmt.Errorf("input cancelled: %w", err)
	}

	id, ok := byLabel[selected]
	if !ok {
		return uuid.Nil, fmt.Errorf("unknown account selection %q", selected)
	}
	return id, nil
}
