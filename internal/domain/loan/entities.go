package loan

import (
	"errors"
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var (
	ErrNotFound          = errors.New("loan not found")
	ErrInvalidTransition = errors.New("loan is not pending")
)

// ValidationError carries a user-facing message, surfaced verbatim.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// Terminal reports whether no further status transition is permitted.
func (s Status) Terminal() bool { return s == StatusApproved || s == StatusRejected }

type Loan struct {
	ID            string    `json:"id"`
	ApplicantName string    `json:"applicantName"`
	Amount        float64   `json:"amount"`
	TermMonths    int       `json:"termMonths"`
	InterestRate  float64   `json:"interestRate"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// MonthlyPayment returns the amortizing payment:
// amount/term at zero rate, else amount*r*(1+r)^n / ((1+r)^n - 1)
// with r the monthly rate and n the term in months.
func (l Loan) MonthlyPayment() float64 {
	if l.InterestRate == 0 {
		return l.Amount / float64(l.TermMonths)
	}
	r := l.InterestRate / 12
	n := float64(l.TermMonths)
	f := math.Pow(1+r, n)
	return l.Amount * r * f / (f - 1)
}
