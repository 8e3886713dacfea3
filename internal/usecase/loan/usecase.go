package loan

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	domain "tredgate-loans/internal/domain/loan"
	"tredgate-loans/internal/infrastructure/store"
	"tredgate-loans/internal/logging"
	"tredgate-loans/pkg/id"
)

// Auto-decision thresholds; both boundaries inclusive for approval.
const (
	autoApproveMaxAmount = 100000
	autoApproveMaxTerm   = 60
)

type Usecase struct{ store store.Store }

func NewUsecase(s store.Store) *Usecase { return &Usecase{store: s} }

type CreateLoanInput struct {
	ApplicantName string  `json:"applicantName"`
	Amount        float64 `json:"amount"`
	TermMonths    int     `json:"termMonths"`
	InterestRate  float64 `json:"interestRate"`
}

// Decision reports an auto-decide outcome; callers need both statuses to
// build an accurate audit entry.
type Decision struct {
	Previous domain.Status `json:"previousStatus"`
	New      domain.Status `json:"newStatus"`
}

type Summary struct {
	Total          int     `json:"total"`
	Pending        int     `json:"pending"`
	Approved       int     `json:"approved"`
	Rejected       int     `json:"rejected"`
	TotalAmount    float64 `json:"totalAmount"`
	ApprovedAmount float64 `json:"approvedAmount"`
}

func validate(in CreateLoanInput) error {
	// Checks run in a fixed order; the first failure is surfaced alone.
	if strings.TrimSpace(in.ApplicantName) == "" {
		return &domain.ValidationError{Message: "Applicant name is required"}
	}
	if in.Amount <= 0 {
		return &domain.ValidationError{Message: "Amount must be greater than 0"}
	}
	if in.TermMonths <= 0 {
		return &domain.ValidationError{Message: "Term months must be greater than 0"}
	}
	if in.InterestRate < 0 {
		return &domain.ValidationError{Message: "Interest rate is required and cannot be negative"}
	}
	return nil
}

func (u *Usecase) Create(ctx context.Context, in CreateLoanInput) (*domain.Loan, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	loans, err := u.load(ctx)
	if err != nil {
		return nil, err
	}

	l := domain.Loan{
		ID:            id.NewID32(),
		ApplicantName: strings.TrimSpace(in.ApplicantName),
		Amount:        in.Amount,
		TermMonths:    in.TermMonths,
		InterestRate:  in.InterestRate,
		Status:        domain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
	loans = append(loans, l)

	if err := u.persist(ctx, loans); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateStatus applies a manual pending → approved/rejected transition.
func (u *Usecase) UpdateStatus(ctx context.Context, loanID string, target domain.Status) error {
	event, ok := domain.EventFor(target)
	if !ok {
		return &domain.ValidationError{Message: "Invalid status"}
	}

	loans, err := u.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return domain.ErrNotFound
	}

	sm, err := domain.NewStatusMachine(loans[i].Status)
	if err != nil {
		return err
	}
	if err := sm.Fire(event); err != nil {
		return err
	}

	loans[i].Status = sm.Current()
	return u.persist(ctx, loans)
}

// AutoDecide applies the threshold rule: approved iff principal and term
// are both within limits.
func (u *Usecase) AutoDecide(ctx context.Context, loanID string) (*Decision, error) {
	loans, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}

	target := domain.StatusRejected
	if loans[i].Amount <= autoApproveMaxAmount && loans[i].TermMonths <= autoApproveMaxTerm {
		target = domain.StatusApproved
	}

	sm, err := domain.NewStatusMachine(loans[i].Status)
	if err != nil {
		return nil, err
	}
	event, _ := domain.EventFor(target)
	if err := sm.Fire(event); err != nil {
		return nil, err
	}

	previous := loans[i].Status
	loans[i].Status = sm.Current()
	if err := u.persist(ctx, loans); err != nil {
		return nil, err
	}
	return &Decision{Previous: previous, New: loans[i].Status}, nil
}

// Delete removes the loan and returns it; callers need the last known
// status for the deletion audit entry.
func (u *Usecase) Delete(ctx context.Context, loanID string) (*domain.Loan, error) {
	loans, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}

	removed := loans[i]
	loans = append(loans[:i], loans[i+1:]...)
	if err := u.persist(ctx, loans); err != nil {
		return nil, err
	}
	return &removed, nil
}

func (u *Usecase) Get(ctx context.Context, loanID string) (*domain.Loan, error) {
	loans, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(loans, loanID)
	if i < 0 {
		return nil, domain.ErrNotFound
	}
	l := loans[i]
	return &l, nil
}

// List returns loans in insertion order.
func (u *Usecase) List(ctx context.Context) ([]domain.Loan, error) {
	return u.load(ctx)
}

// Summary aggregates from a fresh load; it is never persisted.
func (u *Usecase) Summary(ctx context.Context) (*Summary, error) {
	loans, err := u.load(ctx)
	if err != nil {
		return nil, err
	}
	s := &Summary{Total: len(loans)}
	for _, l := range loans {
		s.TotalAmount += l.Amount
		switch l.Status {
		case domain.StatusPending:
			s.Pending++
		case domain.StatusApproved:
			s.Approved++
			s.ApprovedAmount += l.Amount
		case domain.StatusRejected:
			s.Rejected++
		}
	}
	return s, nil
}

// load reads the full collection. Corrupt stored data reads as empty
// (availability over strict signaling); store transport errors propagate.
func (u *Usecase) load(ctx context.Context) ([]domain.Loan, error) {
	b, ok, err := u.store.Read(ctx, store.KeyLoans)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var loans []domain.Loan
	if err := json.Unmarshal(b, &loans); err != nil {
		logging.FromContext(ctx).Warn("stored loans unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return loans, nil
}

func (u *Usecase) persist(ctx context.Context, loans []domain.Loan) error {
	if loans == nil {
		loans = []domain.Loan{}
	}
	b, err := json.Marshal(loans)
	if err != nil {
		return err
	}
	return u.store.Write(ctx, store.KeyLoans, b)
}

func indexOf(loans []domain.Loan, loanID string) int {
	for i := range loans {
		if loans[i].ID == loanID {
			return i
		}
	}
	return -1
}
