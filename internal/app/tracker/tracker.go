// Package tracker implements the habit progress-and-rewards engine:
// the day-keyed ledger, deterministic mission selection, badge and
// achievement derivation, and XP/level progression. One Engine instance
// owns the aggregate state; all mutation goes through its operations
// and is written through to the store before control returns.
package tracker

import (
	"fmt"
	"sync"
	"time"

	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/catalog"
	"github.com/habitquest/habitquest/internal/infra/metrics"
	"github.com/habitquest/habitquest/internal/infra/store"
)

// Engine owns the aggregate habit state. Operations are synchronous and
// run to completion; the mutex only exists because the HTTP surface may
// call in from multiple connections.
type Engine struct {
	mu    sync.Mutex
	db    *store.DB
	state *domain.State
	now   func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a time source, letting tests simulate day rollover.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New loads the persisted aggregate (or initializes a fresh one),
// re-derives everything derivable, ensures today's record exists, and
// writes the result back. This is the load-or-init entry point the
// presentation layer calls on startup.
func New(db *store.DB, opts ...Option) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{db: db, now: time.Now}
	for _, opt := range opts {
		opt(e)
	}

	st, err := db.LoadState()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if st == nil {
		st = domain.NewState()
	}
	e.state = st

	e.normalize()
	e.ensureTodayLocked()
	e.recomputeAchievements()
	e.recomputeStats()
	if err := e.save(); err != nil {
		return nil, err
	}
	return e, nil
}

// normalize repairs nil maps and re-derives the current level from
// total XP. Persisted levels are never trusted: the threshold table may
// have changed between versions.
func (e *Engine) normalize() {
	if e.state.History == nil {
		e.state.History = make(map[string]*domain.DayRecord)
	}
	if e.state.Achievements == nil {
		e.state.Achievements = make(map[string]*domain.AchievementProgress)
	}
	for _, rec := range e.state.History {
		if rec.Goals == nil {
			rec.Goals = make(map[string]int)
		}
		if rec.Missions == nil {
			rec.Missions = make(map[string]domain.MissionInstance)
		}
	}
	e.state.SchemaVersion = domain.SchemaVersion
	e.state.Progression.CurrentLevel = catalog.LevelForXP(e.state.Progression.TotalXP)
	metrics.CurrentLevel.Set(float64(e.state.Progression.CurrentLevel))
}

// save persists the aggregate through the store adapter.
func (e *Engine) save() error {
	if err := e.db.SaveState(e.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// EnsureToday runs the date-rollover check: if the wall clock moved to
// a new calendar day since the ledger last looked, a fresh record is
// created (unless one already exists) with that day's missions, and
// "today" is repointed. Safe to call on every focus or timer event —
// repeated calls within one day change nothing.
func (e *Engine) EnsureToday() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := e.ensureTodayLocked()
	if !changed {
		return false, nil
	}
	e.recomputeStats()
	return true, e.save()
}

// ensureTodayLocked is the rollover transition. Idempotent: an existing
// record keeps its progress and its missions are never regenerated.
func (e *Engine) ensureTodayLocked() bool {
	key := domain.DateKey(e.now())
	changed := key != e.state.Today

	rec := e.state.History[key]
	if rec == nil {
		rec = domain.NewDayRecord(key, catalog.Goals)
		e.state.History[key] = rec
	}
	if len(rec.Missions) == 0 {
		for _, def := range SelectMissions(key, catalog.Missions, catalog.MissionsPerDay) {
			rec.Missions[def.ID] = def.Instantiate()
			rec.MissionOrder = append(rec.MissionOrder, def.ID)
		}
	}

	e.state.Today = key
	return changed
}

// today returns the current day's record. Callers must hold the lock
// and have run ensureTodayLocked.
func (e *Engine) today() *domain.DayRecord {
	return e.state.History[e.state.Today]
}
