package tracker

import (
	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/catalog"
	"github.com/habitquest/habitquest/internal/infra/metrics"
)

// ─── Perfect-day predicates ─────────────────────────────────────────────────
// These are computed fresh from a record's stored goals and missions;
// the sticky Completed flag is only for one-time celebration/XP.

// allGoalsDone reports whether every catalog goal is complete on a day.
func allGoalsDone(day *domain.DayRecord) bool {
	for _, g := range catalog.Goals {
		if !g.Done(day.Goals[g.ID]) {
			return false
		}
	}
	return true
}

// isPerfect reports whether all goals and all of the day's missions are
// complete.
func isPerfect(day *domain.DayRecord) bool {
	return allGoalsDone(day) && day.AllMissionsDone()
}

// ─── Badges ─────────────────────────────────────────────────────────────────

// mintBadge appends a badge if its id is not already in the set.
// Returns the badge and whether it was newly created.
func (e *Engine) mintBadge(b domain.Badge) (domain.Badge, bool) {
	if e.state.HasBadge(b.ID) {
		return b, false
	}
	e.state.Badges = append(e.state.Badges, b)
	metrics.BadgesAwarded.WithLabelValues(string(b.Type)).Inc()
	return b, true
}

// recomputeBadges derives today's badges from the current record and
// returns exactly the ones newly created by this call. Awarding is
// idempotent: badge ids are "{source}_{date}" and the set is
// deduplicated, so running this twice in a row yields nothing new.
func (e *Engine) recomputeBadges() []domain.Badge {
	day := e.today()
	today := e.state.Today
	var created []domain.Badge

	for _, g := range catalog.Goals {
		if !g.Done(day.Goals[g.ID]) {
			continue
		}
		meta := catalog.Badges[g.ID]
		if b, isNew := e.mintBadge(domain.Badge{
			ID:     g.ID + "_" + today,
			Type:   domain.BadgeGoal,
			Icon:   meta.Icon,
			Name:   meta.Name,
			Date:   today,
			GoalID: g.ID,
		}); isNew {
			created = append(created, b)
		}
	}

	for _, id := range day.MissionOrder {
		inst := day.Missions[id]
		if !inst.Completed {
			continue
		}
		if b, isNew := e.mintBadge(domain.Badge{
			ID:        inst.ID + "_" + today,
			Type:      domain.BadgeMission,
			Icon:      inst.Icon,
			Name:      inst.Title,
			Date:      today,
			MissionID: inst.ID,
		}); isNew {
			created = append(created, b)
		}
	}

	combos := []struct {
		name string
		hit  bool
	}{
		{catalog.BadgeGoalMaster, allGoalsDone(day)},
		{catalog.BadgeMissionHero, day.AllMissionsDone()},
		{catalog.BadgePerfectDay, isPerfect(day)},
	}
	for _, c := range combos {
		if !c.hit {
			continue
		}
		meta := catalog.Badges[c.name]
		if b, isNew := e.mintBadge(domain.Badge{
			ID:   c.name + "_" + today,
			Type: domain.BadgeCombo,
			Icon: meta.Icon,
			Name: meta.Name,
			Date: today,
		}); isNew {
			created = append(created, b)
		}
	}

	return created
}

// ─── Achievement metrics ────────────────────────────────────────────────────
// Each metric scans the entire ledger history, not just today.

// totalGoalValue sums a goal's stored values across all days.
// Checkbox days contribute 0 or 1.
func (e *Engine) totalGoalValue(goalID string) int {
	total := 0
	for _, day := range e.state.History {
		total += day.Goals[goalID]
	}
	return total
}

// daysGoalMet counts days where a goal's completion predicate held.
func (e *Engine) daysGoalMet(goalID string) int {
	def, ok := catalog.GoalByID(goalID)
	if !ok {
		return 0
	}
	count := 0
	for _, day := range e.state.History {
		if def.Done(day.Goals[goalID]) {
			count++
		}
	}
	return count
}

// totalMissionsDone counts completed mission instances across all days.
func (e *Engine) totalMissionsDone() int {
	count := 0
	for _, day := range e.state.History {
		count += day.MissionsDone()
	}
	return count
}

// perfectDayCount counts days that are perfect per the fresh predicate.
func (e *Engine) perfectDayCount() int {
	count := 0
	for _, day := range e.state.History {
		if isPerfect(day) {
			count++
		}
	}
	return count
}

// achievementMetric evaluates the cumulative metric for an achievement.
// Unknown ids report 0, which unlocks nothing.
func (e *Engine) achievementMetric(id string) int {
	switch id {
	case catalog.AchWaterHero:
		return e.totalGoalValue("water")
	case catalog.AchReadingMaster:
		return e.totalGoalValue("reading")
	case catalog.AchStretchGuru:
		return e.totalGoalValue("stretch")
	case catalog.AchLanguageLegend:
		return e.daysGoalMet("duolingo")
	case catalog.AchMissionMaster:
		return e.totalMissionsDone()
	case catalog.AchPerfectDays:
		return e.perfectDayCount()
	}
	return 0
}

// recomputeAchievements re-evaluates every ladder against its metric.
// Unlocking is monotonic: levels are only ever added, and CurrentLevel
// never drops, even when a metric shrinks after a data import.
func (e *Engine) recomputeAchievements() {
	for _, def := range catalog.Achievements {
		count := e.achievementMetric(def.ID)

		prog := e.state.Achievements[def.ID]
		if prog == nil {
			prog = &domain.AchievementProgress{}
			e.state.Achievements[def.ID] = prog
		}
		prog.CurrentCount = count

		for i, lvl := range def.Levels {
			if count < lvl.Threshold || prog.HasLevel(i) {
				continue
			}
			prog.UnlockedLevels = append(prog.UnlockedLevels, i)
			if i+1 > prog.CurrentLevel {
				prog.CurrentLevel = i + 1
			}
			metrics.AchievementLevels.WithLabelValues(def.ID).Inc()
		}
	}
}
