package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tredgate-loans/internal/domain/audit"
	"tredgate-loans/internal/domain/loan"
)

var approveCmd = &cobra.Command{
	Use:   "approve <loan-id>",
	Short: "Manually approve a pending loan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManualDecision(cmd, args[0], loan.StatusApproved)
	},
}

var rejectCmd = &cobra.Command{
	Use:   "reject <loan-id>",
	Short: "Manually reject a pending loan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runManualDecision(cmd, args[0], loan.StatusRejected)
	},
}

func runManualDecision(cmd *cobra.Command, loanID string, target loan.Status) error {
	ctx := cmd.Context()

	if err := svc.Loans.UpdateStatus(ctx, loanID, target); err != nil {
		return err
	}
	l, err := svc.Loans.Get(ctx, loanID)
	if err != nil {
		return err
	}

	entry := audit.NewStatusChangeEntry(*l, loan.StatusPending, target, audit.DecisionManual)
	if err := svc.Audit.Append(ctx, entry); err != nil {
		return fmt.Errorf("status updated but audit append failed: %w", err)
	}

	fmt.Printf("Loan %s is now %s\n", loanID, target)
	return nil
}
