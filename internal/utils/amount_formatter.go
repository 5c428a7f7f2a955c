package utils

import (
	"fmt"
	"strconv"
	"strings"
)

func FormatAmount(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// ParseAmount converts console input like "150" or "150.50" into a
// monetary amount. Negative amounts are rejected here so the prompts
// can report the problem before the core is ever called.
func ParseAmount(input string) (float64, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, fmt.Errorf("amount is required")
	}

	amount, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", input)
	}

	if amount < 0 {
		return 0, fmt.Errorf("amount can't be negative")
	}

	return amount, nil
}
