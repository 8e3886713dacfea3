package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	auditUC "tredgate-loans/internal/usecase/audit"
)

var (
	auditAction string
	auditSearch string
	auditJSON   bool
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Show the audit trail, newest first",
	Example: `  tredgate audit
  tredgate audit --action loan_created --search alice`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := svc.Audit.Load(cmd.Context())
		if err != nil {
			return err
		}
		entries = auditUC.Query(entries, auditAction, auditSearch)

		if auditJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(entries)
		}

		if len(entries) == 0 {
			fmt.Println("No audit entries.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tACTION\tLOAN\tAPPLICANT\tAMOUNT\tTRANSITION")
		for _, e := range entries {
			transition := ""
			if e.PreviousStatus != "" {
				transition = string(e.PreviousStatus)
				if e.NewStatus != "" {
					transition += " -> " + string(e.NewStatus)
				}
				if e.DecisionMethod != "" {
					transition += " (" + string(e.DecisionMethod) + ")"
				}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n",
				e.Timestamp.Format(time.RFC3339), e.ActionType, e.LoanID,
				e.ApplicantName, e.LoanAmount, transition)
		}
		return w.Flush()
	},
}

func init() {
	auditCmd.Flags().StringVar(&auditAction, "action", "all",
		"filter by action type (all, loan_created, status_changed_manual, status_changed_auto, loan_deleted)")
	auditCmd.Flags().StringVar(&auditSearch, "search", "",
		"case-insensitive match on applicant name or loan id")
	auditCmd.Flags().BoolVar(&auditJSON, "json", false, "output as JSON")
}
