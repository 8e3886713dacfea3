package audit

import (
	"time"

	"github.com/google/uuid"

	"tredgate-loans/internal/domain/loan"
)

type ActionType string

type DecisionMethod string

const (
	ActionLoanCreated         ActionType = "loan_created"
	ActionStatusChangedManual ActionType = "status_changed_manual"
	ActionStatusChangedAuto   ActionType = "status_changed_auto"
	ActionLoanDeleted         ActionType = "loan_deleted"

	DecisionManual DecisionMethod = "manual"
	DecisionAuto   DecisionMethod = "auto"

	// FilterAll is the sentinel that disables action-type filtering.
	FilterAll = "all"
)

// Entry is an immutable record of one domain event. Entries are append-only
// and outlive the loans they reference: LoanID is a weak reference, with
// ApplicantName and LoanAmount snapshotted at event time.
type Entry struct {
	ID             string         `json:"id"`
	Timestamp      time.Time      `json:"timestamp"`
	ActionType     ActionType     `json:"actionType"`
	LoanID         string         `json:"loanId"`
	ApplicantName  string         `json:"applicantName"`
	LoanAmount     float64        `json:"loanAmount"`
	PreviousStatus loan.Status    `json:"previousStatus,omitempty"`
	NewStatus      loan.Status    `json:"newStatus,omitempty"`
	DecisionMethod DecisionMethod `json:"decisionMethod,omitempty"`
}

func newEntry(action ActionType, l loan.Loan) Entry {
	return Entry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		ActionType:    action,
		LoanID:        l.ID,
		ApplicantName: l.ApplicantName,
		LoanAmount:    l.Amount,
	}
}

func NewCreatedEntry(l loan.Loan) Entry {
	return newEntry(ActionLoanCreated, l)
}

func NewStatusChangeEntry(l loan.Loan, previous, next loan.Status, method DecisionMethod) Entry {
	action := ActionStatusChangedManual
	if method == DecisionAuto {
		action = ActionStatusChangedAuto
	}
	e := newEntry(action, l)
	e.PreviousStatus = previous
	e.NewStatus = next
	e.DecisionMethod = method
	return e
}

// NewDeletedEntry records the loan's last known status as PreviousStatus.
func NewDeletedEntry(l loan.Loan) Entry {
	e := newEntry(ActionLoanDeleted, l)
	e.PreviousStatus = l.Status
	return e
}
