package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the derived loan portfolio summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := svc.Loans.Summary(cmd.Context())
		if err != nil {
			return err
		}

		if summaryJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(s)
		}

		fmt.Printf("Applications: %d (pending %d, approved %d, rejected %d)\n",
			s.Total, s.Pending, s.Approved, s.Rejected)
		fmt.Printf("Total principal: %.2f\n", s.TotalAmount)
		fmt.Printf("Approved principal: %.2f\n", s.ApprovedAmount)
		return nil
	},
}

func init() {
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
}
