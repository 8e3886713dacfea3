package audit

import (
	"context"
	"reflect"
	"testing"
	"time"

	domain "tredgate-loans/internal/domain/audit"
	loanDomain "tredgate-loans/internal/domain/loan"
	"tredgate-loans/internal/infrastructure/store"
	"tredgate-loans/internal/testutil/storemock"
)

func sampleLoan() loanDomain.Loan {
	return loanDomain.Loan{
		ID:            "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		ApplicantName: "Alice Smith",
		Amount:        50000,
		TermMonths:    36,
		InterestRate:  0.08,
		Status:        loanDomain.StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestNewCreatedEntry_FieldPresence(t *testing.T) {
	l := sampleLoan()
	e := domain.NewCreatedEntry(l)

	if e.ID == "" || e.Timestamp.IsZero() {
		t.Fatalf("entry identity not set: %+v", e)
	}
	if e.ActionType != domain.ActionLoanCreated {
		t.Fatalf("action = %s", e.ActionType)
	}
	if e.LoanID != l.ID || e.ApplicantName != l.ApplicantName || e.LoanAmount != l.Amount {
		t.Fatalf("snapshot fields wrong: %+v", e)
	}
	if e.PreviousStatus != "" || e.NewStatus != "" || e.DecisionMethod != "" {
		t.Fatalf("created entry must not carry transition fields: %+v", e)
	}
}

func TestNewStatusChangeEntry_FieldPresence(t *testing.T) {
	l := sampleLoan()
	l.Status = loanDomain.StatusApproved

	e := domain.NewStatusChangeEntry(l, loanDomain.StatusPending, loanDomain.StatusApproved, domain.DecisionAuto)
	if e.ActionType != domain.ActionStatusChangedAuto {
		t.Fatalf("action = %s", e.ActionType)
	}
	if e.PreviousStatus != loanDomain.StatusPending || e.NewStatus != loanDomain.StatusApproved {
		t.Fatalf("transition fields wrong: %+v", e)
	}
	if e.DecisionMethod != domain.DecisionAuto {
		t.Fatalf("method = %s", e.DecisionMethod)
	}

	m := domain.NewStatusChangeEntry(l, loanDomain.StatusPending, loanDomain.StatusApproved, domain.DecisionManual)
	if m.ActionType != domain.ActionStatusChangedManual {
		t.Fatalf("manual action = %s", m.ActionType)
	}
}

func TestNewDeletedEntry_FieldPresence(t *testing.T) {
	l := sampleLoan()
	l.Status = loanDomain.StatusApproved

	e := domain.NewDeletedEntry(l)
	if e.ActionType != domain.ActionLoanDeleted {
		t.Fatalf("action = %s", e.ActionType)
	}
	if e.PreviousStatus != loanDomain.StatusApproved {
		t.Fatalf("previous = %s, want approved", e.PreviousStatus)
	}
	if e.NewStatus != "" || e.DecisionMethod != "" {
		t.Fatalf("deleted entry must not carry new status or method: %+v", e)
	}
}

func TestAppend_GrowsLogInOrder(t *testing.T) {
	uc := NewUsecase(&storemock.Store{})
	ctx := context.Background()

	first := domain.NewCreatedEntry(sampleLoan())
	second := domain.NewDeletedEntry(sampleLoan())

	if err := uc.Append(ctx, first); err != nil {
		t.Fatalf("Append err: %v", err)
	}
	if err := uc.Append(ctx, second); err != nil {
		t.Fatalf("Append err: %v", err)
	}

	entries, err := uc.Load(ctx)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].ID != first.ID || entries[1].ID != second.ID {
		t.Fatalf("insertion order lost: %+v", entries)
	}
}

func TestLoad_MissingKeyReadsEmpty(t *testing.T) {
	uc := NewUsecase(&storemock.Store{})
	entries, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func TestLoad_CorruptStorageReadsEmpty(t *testing.T) {
	m := &storemock.Store{}
	m.Seed(store.KeyAuditLogs, []byte("<<definitely not json>>"))
	uc := NewUsecase(m)

	entries, err := uc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entries = %d, want 0", len(entries))
	}
}

func queryFixture() []domain.Entry {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	return []domain.Entry{
		{
			ID: "e1", Timestamp: t1, ActionType: domain.ActionLoanCreated,
			LoanID: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", ApplicantName: "Alice Smith", LoanAmount: 50000,
		},
		{
			ID: "e2", Timestamp: t2, ActionType: domain.ActionLoanCreated,
			LoanID: "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", ApplicantName: "Bob Jones", LoanAmount: 70000,
		},
	}
}

func TestQuery_SortsNewestFirst(t *testing.T) {
	got := Query(queryFixture(), domain.FilterAll, "")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "e2" || got[1].ID != "e1" {
		t.Fatalf("order = [%s %s], want [e2 e1]", got[0].ID, got[1].ID)
	}
}

func TestQuery_FilterAndSearchCompose(t *testing.T) {
	logs := queryFixture()
	logs = append(logs, domain.Entry{
		ID: "e3", Timestamp: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		ActionType: domain.ActionLoanDeleted,
		LoanID:     "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", ApplicantName: "Alice Smith",
	})

	got := Query(logs, string(domain.ActionLoanCreated), "alice")
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("got = %+v, want exactly Alice's created entry", got)
	}
}

func TestQuery_SearchMatchesLoanID(t *testing.T) {
	got := Query(queryFixture(), "", "BBBBBBBB")
	if len(got) != 1 || got[0].ID != "e2" {
		t.Fatalf("got = %+v, want Bob's entry", got)
	}
}

func TestQuery_WhitespaceSearchKeepsAll(t *testing.T) {
	got := Query(queryFixture(), domain.FilterAll, "   ")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestQuery_TimestampTiesKeepInsertionOrder(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	logs := []domain.Entry{
		{ID: "first", Timestamp: ts, ActionType: domain.ActionLoanCreated},
		{ID: "second", Timestamp: ts, ActionType: domain.ActionLoanCreated},
		{ID: "third", Timestamp: ts, ActionType: domain.ActionLoanCreated},
	}
	got := Query(logs, domain.FilterAll, "")
	for i, want := range []string{"first", "second", "third"} {
		if got[i].ID != want {
			t.Fatalf("position %d = %s, want %s", i, got[i].ID, want)
		}
	}
}

func TestQuery_Idempotent(t *testing.T) {
	logs := queryFixture()
	a := Query(logs, string(domain.ActionLoanCreated), "smith")
	b := Query(logs, string(domain.ActionLoanCreated), "smith")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated query differs: %+v vs %+v", a, b)
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)
	logs := []domain.Entry{
		{ID: "old", Timestamp: t1},
		{ID: "new", Timestamp: t2},
	}
	_ = Query(logs, "", "")
	if logs[0].ID != "old" || logs[1].ID != "new" {
		t.Fatalf("input slice reordered: %+v", logs)
	}
}
