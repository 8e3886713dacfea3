package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tredgate-loans/internal/domain/audit"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <loan-id>",
	Short: "Delete a loan application (its audit entries are kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		removed, err := svc.Loans.Delete(ctx, args[0])
		if err != nil {
			return err
		}

		if err := svc.Audit.Append(ctx, audit.NewDeletedEntry(*removed)); err != nil {
			return fmt.Errorf("loan deleted but audit append failed: %w", err)
		}

		fmt.Printf("Deleted loan %s (%s, last status %s)\n",
			removed.ID, removed.ApplicantName, removed.Status)
		return nil
	},
}
