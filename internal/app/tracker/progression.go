package tracker

import (
	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/catalog"
	"github.com/habitquest/habitquest/internal/infra/metrics"
)

// grantXP adds experience, re-derives the level from total XP against
// the catalog table, and records both histories. The level is never
// incremented directly — only recomputed — so it stays correct across
// threshold-table revisions. Non-positive amounts are ignored.
func (e *Engine) grantXP(amount int, reason string) {
	if amount <= 0 {
		return
	}

	p := &e.state.Progression
	oldLevel := p.CurrentLevel
	p.TotalXP += amount
	p.CurrentLevel = catalog.LevelForXP(p.TotalXP)

	if p.CurrentLevel > oldLevel {
		p.LevelHistory = append(p.LevelHistory, domain.LevelUpEvent{
			Level:   p.CurrentLevel,
			Date:    e.state.Today,
			TotalXP: p.TotalXP,
		})
		metrics.LevelUps.Inc()
	}

	p.RecordGrant(domain.XPEvent{
		Amount:  amount,
		Reason:  reason,
		Date:    e.state.Today,
		TotalXP: p.TotalXP,
	})

	metrics.XPGranted.Add(float64(amount))
	metrics.CurrentLevel.Set(float64(p.CurrentLevel))
}

// ProgressionView returns the render-ready XP summary: level, title,
// XP into the level, XP needed for the next one, and a 0–100 progress
// percentage. At max level the remaining XP reports as exhausted.
func (e *Engine) ProgressionView() domain.ProgressionView {
	e.mu.Lock()
	defer e.mu.Unlock()

	p := e.state.Progression
	view := domain.ProgressionView{
		Level:   p.CurrentLevel,
		Title:   catalog.TitleForLevel(p.CurrentLevel),
		TotalXP: p.TotalXP,
	}

	if p.CurrentLevel >= catalog.MaxLevel() {
		view.IsMaxLevel = true
		view.Progress = 100
		return view
	}

	floor := catalog.XPForLevel(p.CurrentLevel)
	next := catalog.XPForLevel(p.CurrentLevel + 1)
	view.XPIntoLevel = p.TotalXP - floor
	view.XPForLevel = next - floor
	view.XPRemaining = next - p.TotalXP
	view.Progress = float64(view.XPIntoLevel) / float64(view.XPForLevel) * 100
	if view.Progress > 100 {
		view.Progress = 100
	}
	return view
}

// XPHistory returns the bounded grant log, most recent last.
func (e *Engine) XPHistory() []domain.XPEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.XPEvent, len(e.state.Progression.XPHistory))
	copy(out, e.state.Progression.XPHistory)
	return out
}

// LevelHistory returns the append-only level-up log.
func (e *Engine) LevelHistory() []domain.LevelUpEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.LevelUpEvent, len(e.state.Progression.LevelHistory))
	copy(out, e.state.Progression.LevelHistory)
	return out
}
