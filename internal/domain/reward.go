package domain

// ─── Badges ─────────────────────────────────────────────────────────────────

// BadgeType categorizes how a badge was earned.
type BadgeType string

const (
	BadgeGoal    BadgeType = "goal"
	BadgeMission BadgeType = "mission"
	BadgeCombo   BadgeType = "combo"
)

// Badge is an instantly awarded, date-stamped recognition. The ID is
// deterministic ("{sourceId}_{date}"), which makes awarding idempotent:
// the badge set is deduplicated by ID and never mutated after creation.
type Badge struct {
	ID        string    `json:"id"`
	Type      BadgeType `json:"type"`
	Icon      string    `json:"icon"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	GoalID    string    `json:"goal_id,omitempty"`
	MissionID string    `json:"mission_id,omitempty"`
}

// BadgeMeta is the catalog metadata a badge is minted from.
type BadgeMeta struct {
	Icon string `json:"icon"`
	Name string `json:"name"`
}

// BadgeLockState pairs badge metadata with whether it was ever earned.
// Used by the collection view to render locked placeholders.
type BadgeLockState struct {
	BadgeID     string    `json:"badge_id"`
	Type        BadgeType `json:"type"`
	Icon        string    `json:"icon"`
	Name        string    `json:"name"`
	Unlocked    bool      `json:"unlocked"`
	TimesEarned int       `json:"times_earned"`
	FirstDate   string    `json:"first_date,omitempty"`
}

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementLevel is one rung of an achievement ladder.
type AchievementLevel struct {
	Threshold int    `json:"threshold"`
	Reward    string `json:"reward"`
}

// AchievementDef defines a multi-level achievement. Levels must have
// strictly increasing thresholds; the catalog validator enforces this.
type AchievementDef struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Icon        string             `json:"icon"`
	Description string             `json:"description"`
	Goal        string             `json:"goal"`
	Levels      []AchievementLevel `json:"levels"`
}

// AchievementProgress tracks unlocked levels for one achievement.
// UnlockedLevels is monotonic: indices are added, never removed, even if
// the underlying metric later drops (e.g. after a data import).
type AchievementProgress struct {
	CurrentLevel   int   `json:"current_level"`
	CurrentCount   int   `json:"current_count"`
	UnlockedLevels []int `json:"unlocked_levels"`
}

// HasLevel reports whether a level index is already unlocked.
func (p *AchievementProgress) HasLevel(index int) bool {
	for _, i := range p.UnlockedLevels {
		if i == index {
			return true
		}
	}
	return false
}

// AchievementView is the render-ready projection of one achievement.
type AchievementView struct {
	AchievementDef
	CurrentCount int               `json:"current_count"`
	CurrentLevel int               `json:"current_level"`
	MaxLevel     int               `json:"max_level"`
	Current      *AchievementLevel `json:"current,omitempty"`
	Next         *AchievementLevel `json:"next,omitempty"`
	Progress     float64           `json:"progress"`
}
