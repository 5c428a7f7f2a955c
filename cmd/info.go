package cmd

import (
	"github.com/CSE237SP25/chaching/internal/utils"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath := cfg.ConfigPath
			if configPath == "" {
				configPath = "(defaults, no config file)"
			}

			tableData := pterm.TableData{
				{pterm.Blue("Config File"), configPath},
				{pterm.Blue("Bootstrap Admin"), cfg.Admin.Username},
				{pterm.Blue("Savings Withdrawal Limit"), pterm.Sprintf("%d", cfg.Defaults.WithdrawalLimit)},
				{pterm.Blue("Savings Interest Rate"), utils.FormatAmount(cfg.Defaults.InterestRate * 100) + "%"},
			}

			pterm.DefaultSection.Printf("System Info")
			pterm.DefaultTable.WithData(tableData).Render()
			return nil
		},
	}
}
