package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/habitquest/habitquest/internal/domain"
)

// Export serializes the entire aggregate as a pretty-printed JSON
// document: the transportable form of the ledger, badges, achievement
// progress, progression state, and statistics.
func (e *Engine) Export() ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeStats()
	return json.MarshalIndent(e.state, "", "  ")
}

// Import replaces the aggregate wholesale with a previously exported
// document. A malformed or foreign document is rejected with the old
// state untouched — an import never partially applies. On success the
// level is re-derived, achievements and stats recomputed, today
// re-ensured, and the result persisted.
func (e *Engine) Import(data []byte) error {
	var st domain.State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBadSnapshot, err)
	}
	if err := validateSnapshot(&st); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = &st
	e.normalize()
	e.ensureTodayLocked()
	e.recomputeAchievements()
	e.recomputeStats()
	return e.save()
}

// validateSnapshot sanity-checks an imported document before it is
// allowed to replace the aggregate.
func validateSnapshot(st *domain.State) error {
	if st.SchemaVersion != domain.SchemaVersion {
		return fmt.Errorf("%w: got version %d, want %d",
			domain.ErrSchemaMismatch, st.SchemaVersion, domain.SchemaVersion)
	}
	if st.History == nil {
		return fmt.Errorf("%w: missing history", domain.ErrBadSnapshot)
	}
	if st.Progression.TotalXP < 0 {
		return fmt.Errorf("%w: negative total XP", domain.ErrBadSnapshot)
	}
	for key, rec := range st.History {
		if rec == nil || rec.Date != key {
			return fmt.Errorf("%w: day record %q is inconsistent", domain.ErrBadSnapshot, key)
		}
	}
	return nil
}
