// Package catalog holds the static reference data of the habit engine:
// daily goal definitions, the mission pool, badge metadata, achievement
// ladders, XP reward amounts, and the level threshold/title table.
// Everything here is immutable at runtime.
package catalog

import (
	"fmt"

	"github.com/habitquest/habitquest/internal/domain"
)

// ─── Daily Goals ────────────────────────────────────────────────────────────

// Goals is the fixed set of daily goals, in display order.
var Goals = []domain.GoalDef{
	{ID: "water", Icon: "💧", Title: "Drink Water", Target: 8, Unit: "cups", Kind: domain.GoalCounter},
	{ID: "stretch", Icon: "🧘", Title: "Stretch", Target: 15, Unit: "minutes", Kind: domain.GoalCounter},
	{ID: "duolingo", Icon: "🦉", Title: "Duolingo", Target: 1, Unit: "lesson", Kind: domain.GoalCheckbox},
	{ID: "reading", Icon: "📚", Title: "Reading", Target: 30, Unit: "minutes", Kind: domain.GoalCounter},
}

// GoalByID looks up a goal definition. Second return is false for
// unknown ids; callers treat that as "not applicable", never an error.
func GoalByID(id string) (domain.GoalDef, bool) {
	for _, g := range Goals {
		if g.ID == id {
			return g, true
		}
	}
	return domain.GoalDef{}, false
}

// ─── XP Rewards ─────────────────────────────────────────────────────────────

// XP reward amounts per completion transition.
const (
	XPDailyGoal      = 15 // First completion of a goal that day
	XPDailyGoalBonus = 5  // Extra when a counter goal exceeds its target
	XPMission        = 10 // First completion of a mission that day
	XPPerfectDay     = 25 // All goals + all missions, once per day
)

// MissionsPerDay is how many missions are selected from the pool daily.
const MissionsPerDay = 3

// ─── Levels ─────────────────────────────────────────────────────────────────

// LevelInfo is one row of the progression table.
type LevelInfo struct {
	Level int
	XP    int // Cumulative XP required to reach the level
	Title string
}

// Levels is the canonical progression table, L1–L50. Level 1 starts at
// 0 XP; thresholds are strictly increasing. This is the single source
// for both level recomputation and display titles.
var Levels = []LevelInfo{
	{1, 0, "Rookie"},
	{2, 100, "Apprentice"},
	{3, 200, "Scout"},
	{4, 350, "Adventurer"},
	{5, 500, "Pathfinder"},
	{6, 700, "Challenger"},
	{7, 900, "Explorer"},
	{8, 1150, "Warrior"},
	{9, 1400, "Champion"},
	{10, 1700, "Hero"},
	{11, 2000, "Knight"},
	{12, 2350, "Guardian"},
	{13, 2700, "Crusader"},
	{14, 3100, "Master"},
	{15, 3500, "Grandmaster"},
	{16, 3950, "Legend"},
	{17, 4400, "Mythic"},
	{18, 4900, "Dragonlord"},
	{19, 5400, "Infinity"},
	{20, 6000, "Eternal"},
	{21, 6600, "Celestial"},
	{22, 7250, "Starborn"},
	{23, 7900, "Moonblade"},
	{24, 8600, "Sunseeker"},
	{25, 9300, "Skybreaker"},
	{26, 10100, "Stormcaller"},
	{27, 10900, "Flamekeeper"},
	{28, 11800, "Shadowstalker"},
	{29, 12700, "Lightbringer"},
	{30, 13700, "Timewalker"},
	{31, 14700, "Voidstrider"},
	{32, 15800, "Dreamweaver"},
	{33, 16900, "Spiritbinder"},
	{34, 18100, "Realmkeeper"},
	{35, 19300, "Cosmic Sage"},
	{36, 20600, "Fateweaver"},
	{37, 21900, "Infinity Knight"},
	{38, 23300, "Eclipse Lord"},
	{39, 24700, "Starforged"},
	{40, 26200, "Planar Champion"},
	{41, 27700, "Reality Shaper"},
	{42, 29300, "Eternal Flame"},
	{43, 30900, "Galaxy Guardian"},
	{44, 32600, "Dimension Walker"},
	{45, 34300, "Universal Hero"},
	{46, 36100, "Cosmic Titan"},
	{47, 37900, "Mythborn Legend"},
	{48, 39800, "Ascendant"},
	{49, 41700, "Transcendent"},
	{50, 43700, "Omniversal Eternal"},
}

// MaxLevel is the highest defined level.
func MaxLevel() int { return Levels[len(Levels)-1].Level }

// XPForLevel returns the cumulative XP required to reach a level.
// Levels at or below 1 require 0; levels beyond the table require the
// top threshold.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	if level > len(Levels) {
		return Levels[len(Levels)-1].XP
	}
	return Levels[level-1].XP
}

// LevelForXP returns max{level : totalXP >= threshold(level)}.
func LevelForXP(totalXP int) int {
	for i := len(Levels) - 1; i >= 0; i-- {
		if totalXP >= Levels[i].XP {
			return Levels[i].Level
		}
	}
	return 1
}

// TitleForLevel returns the display title for a level, clamped to the
// table bounds.
func TitleForLevel(level int) string {
	if level < 1 {
		return Levels[0].Title
	}
	if level > len(Levels) {
		return Levels[len(Levels)-1].Title
	}
	return Levels[level-1].Title
}

// ─── Validation ─────────────────────────────────────────────────────────────

// Validate checks catalog internal consistency: unique ids, badge
// metadata for every goal and mission, strictly increasing achievement
// thresholds, and a monotonic level table. Run once at startup.
func Validate() error {
	seen := make(map[string]bool)
	for _, g := range Goals {
		if seen[g.ID] {
			return fmt.Errorf("%w: duplicate goal id %q", domain.ErrCatalogInvalid, g.ID)
		}
		seen[g.ID] = true
		if g.Target <= 0 {
			return fmt.Errorf("%w: goal %q has non-positive target", domain.ErrCatalogInvalid, g.ID)
		}
		if _, ok := Badges[g.ID]; !ok {
			return fmt.Errorf("%w: goal %q has no badge metadata", domain.ErrCatalogInvalid, g.ID)
		}
	}

	for _, m := range Missions {
		if seen[m.ID] {
			return fmt.Errorf("%w: duplicate mission id %q", domain.ErrCatalogInvalid, m.ID)
		}
		seen[m.ID] = true
		if _, ok := Badges[m.ID]; !ok {
			return fmt.Errorf("%w: mission %q has no badge metadata", domain.ErrCatalogInvalid, m.ID)
		}
	}

	for _, a := range Achievements {
		prev := -1
		for i, lvl := range a.Levels {
			if lvl.Threshold <= prev {
				return fmt.Errorf("%w: achievement %q level %d threshold not increasing",
					domain.ErrCatalogInvalid, a.ID, i)
			}
			prev = lvl.Threshold
		}
	}

	for i := 1; i < len(Levels); i++ {
		if Levels[i].XP <= Levels[i-1].XP || Levels[i].Level != Levels[i-1].Level+1 {
			return fmt.Errorf("%w: level table broken at L%d", domain.ErrCatalogInvalid, Levels[i].Level)
		}
	}

	return nil
}
