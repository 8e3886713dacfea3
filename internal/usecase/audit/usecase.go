package audit

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	domain "tredgate-loans/internal/domain/audit"
	"tredgate-loans/internal/infrastructure/store"
	"tredgate-loans/internal/logging"
)

type Usecase struct{ store store.Store }

func NewUsecase(s store.Store) *Usecase { return &Usecase{store: s} }

// Load reads the full log in insertion order. Missing or corrupt stored
// data reads as empty; only store transport errors propagate.
func (u *Usecase) Load(ctx context.Context) ([]domain.Entry, error) {
	b, ok, err := u.store.Read(ctx, store.KeyAuditLogs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var entries []domain.Entry
	if err := json.Unmarshal(b, &entries); err != nil {
		logging.FromContext(ctx).Warn("stored audit log unreadable, treating as empty", "error", err)
		return nil, nil
	}
	return entries, nil
}

// Append persists one entry at the end of the log. The log is append-only;
// no operation ever rewrites or drops an existing entry.
func (u *Usecase) Append(ctx context.Context, e domain.Entry) error {
	entries, err := u.Load(ctx)
	if err != nil {
		return err
	}
	entries = append(entries, e)
	b, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return u.store.Write(ctx, store.KeyAuditLogs, b)
}

// Query filters by action type (the "all" sentinel or an empty filter keeps
// everything), then case-insensitively matches the search text against
// applicant name and loan id, then sorts newest-first. The sort is stable
// so entries with colliding timestamps keep insertion order.
func Query(entries []domain.Entry, actionFilter, search string) []domain.Entry {
	out := make([]domain.Entry, 0, len(entries))

	for _, e := range entries {
		if actionFilter != "" && actionFilter != domain.FilterAll &&
			string(e.ActionType) != actionFilter {
			continue
		}
		out = append(out, e)
	}

	if needle := strings.ToLower(strings.TrimSpace(search)); needle != "" {
		kept := out[:0]
		for _, e := range out {
			if strings.Contains(strings.ToLower(e.ApplicantName), needle) ||
				strings.Contains(strings.ToLower(e.LoanID), needle) {
				kept = append(kept, e)
			}
		}
		out = kept
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}
