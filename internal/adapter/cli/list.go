package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loan applications in creation order",
	RunE: func(cmd *cobra.Command, args []string) error {
		loans, err := svc.Loans.List(cmd.Context())
		if err != nil {
			return err
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(loans)
		}

		if len(loans) == 0 {
			fmt.Println("No loan applications.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tAPPLICANT\tAMOUNT\tTERM\tRATE\tSTATUS\tMONTHLY\tCREATED")
		for _, l := range loans {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\t%.4f\t%s\t%.2f\t%s\n",
				l.ID, l.ApplicantName, l.Amount, l.TermMonths, l.InterestRate,
				l.Status, l.MonthlyPayment(), l.CreatedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
}
