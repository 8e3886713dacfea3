package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tredgate-loans/internal/domain/audit"
	loanUC "tredgate-loans/internal/usecase/loan"
)

var (
	createName   string
	createAmount float64
	createTerm   int
	createRate   float64
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new loan application (status starts as pending)",
	Example: `  tredgate create --name "John Doe" --amount 50000 --term 36 --rate 0.08`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		l, err := svc.Loans.Create(ctx, loanUC.CreateLoanInput{
			ApplicantName: createName,
			Amount:        createAmount,
			TermMonths:    createTerm,
			InterestRate:  createRate,
		})
		if err != nil {
			return err
		}

		// The user action is complete only once the audit entry is durable.
		if err := svc.Audit.Append(ctx, audit.NewCreatedEntry(*l)); err != nil {
			return fmt.Errorf("loan %s created but audit append failed: %w", l.ID, err)
		}

		fmt.Printf("Created loan %s for %s (monthly payment %.2f)\n",
			l.ID, l.ApplicantName, l.MonthlyPayment())
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "applicant name")
	createCmd.Flags().Float64Var(&createAmount, "amount", 0, "principal amount")
	createCmd.Flags().IntVar(&createTerm, "term", 0, "repayment term in months")
	createCmd.Flags().Float64Var(&createRate, "rate", 0, "annual interest rate, fractional (0.08 = 8%)")
}
