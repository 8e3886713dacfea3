package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tredgate-loans/internal/domain/audit"
)

var decideCmd = &cobra.Command{
	Use:   "decide <loan-id>",
	Short: "Apply the automatic decision rule to a pending loan",
	Long: `Apply the automatic decision rule to a pending loan.

A loan is approved when its amount is at most 100000 and its term at most
60 months; otherwise it is rejected. Both limits are inclusive.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		loanID := args[0]

		decision, err := svc.Loans.AutoDecide(ctx, loanID)
		if err != nil {
			return err
		}
		l, err := svc.Loans.Get(ctx, loanID)
		if err != nil {
			return err
		}

		entry := audit.NewStatusChangeEntry(*l, decision.Previous, decision.New, audit.DecisionAuto)
		if err := svc.Audit.Append(ctx, entry); err != nil {
			return fmt.Errorf("status updated but audit append failed: %w", err)
		}

		fmt.Printf("Loan %s auto-decided: %s -> %s\n", loanID, decision.Previous, decision.New)
		return nil
	},
}
