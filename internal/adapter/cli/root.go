package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tredgate-loans/internal/config"
	"tredgate-loans/internal/logging"
)

var svc *services

var rootCmd = &cobra.Command{
	Use:           "tredgate",
	Short:         "Tredgate loan application record-keeper",
	Long:          "Create loan applications, move them through their status lifecycle and inspect the audit trail. All state lives in a local key-value store.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		logging.Init(cfg.LogLevel, cfg.AppEnv)

		svc, err = newServices(cfg)
		return err
	},
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(approveCmd)
	rootCmd.AddCommand(rejectCmd)
	rootCmd.AddCommand(decideCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(auditCmd)
}
