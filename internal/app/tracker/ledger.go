package tracker

import (
	"fmt"

	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/catalog"
	"github.com/habitquest/habitquest/internal/infra/metrics"
)

// GoalResult reports what a goal update changed, with enough detail for
// the caller to drive celebration effects.
type GoalResult struct {
	Applied    bool            `json:"applied"` // false: unknown goal id, nothing happened
	GoalID     string          `json:"goal_id"`
	Value      int             `json:"value"`     // Stored (clamped) value
	Completed  bool            `json:"completed"` // Incomplete → complete transition
	Exceeding  bool            `json:"exceeding"` // Counter value beyond its target
	XPGranted  int             `json:"xp_granted"`
	NewBadges  []domain.Badge  `json:"new_badges,omitempty"`
	PerfectDay bool            `json:"perfect_day"` // Day first became perfect on this call
	LevelUp    *domain.LevelUp `json:"level_up,omitempty"`
}

// MissionResult reports a mission toggle.
type MissionResult struct {
	Found      bool            `json:"found"` // false: not one of today's missions
	MissionID  string          `json:"mission_id"`
	Completed  bool            `json:"completed"` // New state after the toggle
	Transition bool            `json:"transition"` // false → true completion
	XPGranted  int             `json:"xp_granted"`
	NewBadges  []domain.Badge  `json:"new_badges,omitempty"`
	PerfectDay bool            `json:"perfect_day"`
	LevelUp    *domain.LevelUp `json:"level_up,omitempty"`
}

// UpdateGoal clamps and writes a goal value into today's record, then
// runs the full derivation pipeline (badges, achievements, XP, stats,
// save). Unknown goal ids degrade to a no-op with Applied=false.
func (e *Engine) UpdateGoal(goalID string, rawValue int) (GoalResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	res := GoalResult{GoalID: goalID}
	def, ok := catalog.GoalByID(goalID)
	if !ok {
		return res, nil
	}

	day := e.today()
	wasDone := def.Done(day.Goals[goalID])
	value := def.Clamp(rawValue)
	day.Goals[goalID] = value

	res.Applied = true
	res.Value = value
	res.Completed = !wasDone && def.Done(value)
	res.Exceeding = def.Kind == domain.GoalCounter && value > def.Target

	oldLevel := e.state.Progression.CurrentLevel
	res.NewBadges = e.recomputeBadges()
	e.recomputeAchievements()

	if res.Completed {
		xp := catalog.XPDailyGoal
		reason := fmt.Sprintf("Completed %s goal", def.Title)
		if res.Exceeding {
			xp += catalog.XPDailyGoalBonus
			reason += " (exceeded!)"
		}
		e.grantXP(xp, reason)
		res.XPGranted += xp
		metrics.GoalsCompleted.WithLabelValues(goalID).Inc()
	}

	if granted := e.markPerfectDay(day); granted > 0 {
		res.XPGranted += granted
		res.PerfectDay = true
	}

	e.recomputeStats()
	res.LevelUp = levelUpSince(oldLevel, e.state.Progression.CurrentLevel)
	return res, e.save()
}

// ToggleMission flips a mission's completed flag for today. Mission ids
// outside today's selection degrade to a no-op with Found=false.
func (e *Engine) ToggleMission(missionID string) (MissionResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	res := MissionResult{MissionID: missionID}
	day := e.today()
	inst, ok := day.Missions[missionID]
	if !ok {
		return res, nil
	}

	inst.Completed = !inst.Completed
	day.Missions[missionID] = inst

	res.Found = true
	res.Completed = inst.Completed
	res.Transition = inst.Completed

	oldLevel := e.state.Progression.CurrentLevel
	res.NewBadges = e.recomputeBadges()
	e.recomputeAchievements()

	if res.Transition {
		e.grantXP(catalog.XPMission, fmt.Sprintf("Completed %s mission", inst.Title))
		res.XPGranted += catalog.XPMission
		metrics.MissionsCompleted.Inc()
	}

	if granted := e.markPerfectDay(day); granted > 0 {
		res.XPGranted += granted
		res.PerfectDay = true
	}

	e.recomputeStats()
	res.LevelUp = levelUpSince(oldLevel, e.state.Progression.CurrentLevel)
	return res, e.save()
}

// SetMood overwrites today's mood. Always succeeds; no completion
// semantics, but the derivation pipeline still runs so observers see
// consistent state after any mutation.
func (e *Engine) SetMood(emoji, text string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ensureTodayLocked()

	day := e.today()
	day.Mood = domain.Mood{Emoji: emoji, Text: text}

	e.recomputeBadges()
	e.recomputeAchievements()
	e.markPerfectDay(day)
	e.recomputeStats()
	return e.save()
}

// markPerfectDay sets the sticky completed flag and grants the
// perfect-day XP bonus the first time a day becomes perfect. The flag
// stays true even if a goal is later decremented, so the bonus never
// repeats. Returns the XP granted (0 if the day is not perfect or was
// already marked).
func (e *Engine) markPerfectDay(day *domain.DayRecord) int {
	if day.Completed || !isPerfect(day) {
		return 0
	}
	day.Completed = true
	e.grantXP(catalog.XPPerfectDay, "Perfect Day — all goals and missions completed!")
	metrics.PerfectDays.Inc()
	return catalog.XPPerfectDay
}

// levelUpSince builds a LevelUp transition, or nil when no level was
// gained.
func levelUpSince(oldLevel, newLevel int) *domain.LevelUp {
	if newLevel <= oldLevel {
		return nil
	}
	return &domain.LevelUp{
		OldLevel: oldLevel,
		NewLevel: newLevel,
		Title:    catalog.TitleForLevel(newLevel),
	}
}
