package tracker

import (
	"time"

	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/catalog"
)

// GoalStatus pairs a goal definition with today's value.
type GoalStatus struct {
	domain.GoalDef
	Value int  `json:"value"`
	Done  bool `json:"done"`
}

// TodayView is the full snapshot of the current day for rendering.
type TodayView struct {
	Date         string                   `json:"date"`
	Goals        []GoalStatus             `json:"goals"`
	Missions     []domain.MissionInstance `json:"missions"`
	Mood         domain.Mood              `json:"mood"`
	GoalsDone    int                      `json:"goals_done"`
	MissionsDone int                      `json:"missions_done"`
	Perfect      bool                     `json:"perfect"`   // Fresh predicate
	Completed    bool                     `json:"completed"` // Sticky flag
}

// Today returns the snapshot of the current day, creating it first if
// the date rolled over.
func (e *Engine) Today() TodayView {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	day := e.today()
	view := TodayView{
		Date:      day.Date,
		Mood:      day.Mood,
		Perfect:   isPerfect(day),
		Completed: day.Completed,
	}

	for _, g := range catalog.Goals {
		value := day.Goals[g.ID]
		done := g.Done(value)
		if done {
			view.GoalsDone++
		}
		view.Goals = append(view.Goals, GoalStatus{GoalDef: g, Value: value, Done: done})
	}

	for _, id := range day.MissionOrder {
		inst := day.Missions[id]
		if inst.Completed {
			view.MissionsDone++
		}
		view.Missions = append(view.Missions, inst)
	}

	return view
}

// WeekView returns per-day summaries for the daysBack days ending
// today, oldest first. Days with no record render as missed with zero
// counts; records are never created by this read.
func (e *Engine) WeekView(daysBack int) []domain.WeekDay {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	if daysBack <= 0 {
		daysBack = 7
	}

	today, _ := time.Parse(domain.DateLayout, e.state.Today)
	week := make([]domain.WeekDay, 0, daysBack)

	for i := daysBack - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := domain.DateKey(date)

		wd := domain.WeekDay{
			Date:          key,
			DayName:       date.Weekday().String()[:3],
			DayNumber:     date.Day(),
			TotalGoals:    len(catalog.Goals),
			TotalMissions: catalog.MissionsPerDay,
			Status:        domain.DayMissed,
			IsToday:       key == e.state.Today,
		}

		if rec := e.state.History[key]; rec != nil {
			for _, g := range catalog.Goals {
				if g.Done(rec.Goals[g.ID]) {
					wd.GoalsCompleted++
				}
			}
			wd.MissionsCompleted = rec.MissionsDone()
			if len(rec.Missions) > 0 {
				wd.TotalMissions = len(rec.Missions)
			}
		}

		switch {
		case wd.GoalsCompleted == wd.TotalGoals && wd.MissionsCompleted == wd.TotalMissions:
			wd.Status = domain.DayCompleted
		case wd.GoalsCompleted > 0 || wd.MissionsCompleted > 0:
			wd.Status = domain.DayPartial
		}

		week = append(week, wd)
	}

	return week
}

// AchievementsView projects every achievement ladder with its progress
// toward the next level. Achievements without recorded progress render
// at level 0 — missing data is an empty state, not an error.
func (e *Engine) AchievementsView() []domain.AchievementView {
	e.mu.Lock()
	defer e.mu.Unlock()

	views := make([]domain.AchievementView, 0, len(catalog.Achievements))
	for _, def := range catalog.Achievements {
		view := domain.AchievementView{
			AchievementDef: def,
			MaxLevel:       len(def.Levels),
			Progress:       100,
		}

		if prog := e.state.Achievements[def.ID]; prog != nil {
			view.CurrentCount = prog.CurrentCount
			view.CurrentLevel = prog.CurrentLevel
		}

		if view.CurrentLevel > 0 && view.CurrentLevel <= len(def.Levels) {
			lvl := def.Levels[view.CurrentLevel-1]
			view.Current = &lvl
		}
		if view.CurrentLevel < len(def.Levels) {
			next := def.Levels[view.CurrentLevel]
			view.Next = &next
			view.Progress = float64(view.CurrentCount) / float64(next.Threshold) * 100
			if view.Progress > 100 {
				view.Progress = 100
			}
		}

		views = append(views, view)
	}
	return views
}

// TodaysBadges returns the badges earned today, in award order.
func (e *Engine) TodaysBadges() []domain.Badge {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	var out []domain.Badge
	for _, b := range e.state.Badges {
		if b.Date == e.state.Today {
			out = append(out, b)
		}
	}
	return out
}

// AllBadges returns every badge the catalog defines, with lock state:
// whether it was ever earned, how many times, and the first date.
// Catalog order: goals, then the mission pool, then combos.
func (e *Engine) AllBadges() []domain.BadgeLockState {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []domain.BadgeLockState
	for _, g := range catalog.Goals {
		out = append(out, e.badgeLockState(g.ID, domain.BadgeGoal))
	}
	for _, m := range catalog.Missions {
		out = append(out, e.badgeLockState(m.ID, domain.BadgeMission))
	}
	for _, name := range []string{catalog.BadgeGoalMaster, catalog.BadgeMissionHero, catalog.BadgePerfectDay} {
		out = append(out, e.badgeLockState(name, domain.BadgeCombo))
	}
	return out
}

// badgeLockState scans the earned set for a catalog badge id.
func (e *Engine) badgeLockState(id string, typ domain.BadgeType) domain.BadgeLockState {
	meta := catalog.Badges[id]
	state := domain.BadgeLockState{
		BadgeID: id,
		Type:    typ,
		Icon:    meta.Icon,
		Name:    meta.Name,
	}
	prefix := id + "_"
	for _, b := range e.state.Badges {
		if len(b.ID) > len(prefix) && b.ID[:len(prefix)] == prefix {
			state.TimesEarned++
			if state.FirstDate == "" || b.Date < state.FirstDate {
				state.FirstDate = b.Date
			}
		}
	}
	state.Unlocked = state.TimesEarned > 0
	return state
}

// Mood returns today's mood note.
func (e *Engine) Mood() domain.Mood {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()
	return e.today().Mood
}
