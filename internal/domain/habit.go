// Package domain holds the pure types of the habit engine.
// No infrastructure dependencies — these structs are what the ledger,
// reward engine, and persistence adapter all agree on.
package domain

import "time"

// DateLayout is the ledger key format: one record per local calendar day.
const DateLayout = "2006-01-02"

// DateKey formats a time as a ledger date key (YYYY-MM-DD, local day).
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ─── Goals ──────────────────────────────────────────────────────────────────

// GoalKind distinguishes how a goal's value is tracked.
type GoalKind string

const (
	// GoalCounter goals accumulate a numeric value toward a target.
	GoalCounter GoalKind = "counter"
	// GoalCheckbox goals are done or not done (stored as 0/1).
	GoalCheckbox GoalKind = "checkbox"
)

// GoalDef is a static daily goal definition from the catalog.
type GoalDef struct {
	ID     string   `json:"id"`
	Icon   string   `json:"icon"`
	Title  string   `json:"title"`
	Target int      `json:"target"`
	Unit   string   `json:"unit"`
	Kind   GoalKind `json:"kind"`
}

// Max returns the largest storable value for this goal.
// Counters allow up to 2× target; checkboxes are capped at 1.
func (g GoalDef) Max() int {
	if g.Kind == GoalCheckbox {
		return 1
	}
	return g.Target * 2
}

// Clamp coerces a raw value into the goal's valid range.
func (g GoalDef) Clamp(value int) int {
	if value < 0 {
		return 0
	}
	if max := g.Max(); value > max {
		return max
	}
	return value
}

// Done reports whether the given stored value completes this goal.
func (g GoalDef) Done(value int) bool {
	if g.Kind == GoalCheckbox {
		return value >= 1
	}
	return value >= g.Target
}

// ─── Missions ───────────────────────────────────────────────────────────────

// MissionDef is a static entry in the daily mission pool.
type MissionDef struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// MissionInstance is a MissionDef copied into a specific day,
// plus that day's completion state.
type MissionInstance struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Instantiate copies a mission definition into a fresh daily instance.
func (m MissionDef) Instantiate() MissionInstance {
	return MissionInstance{
		ID:          m.ID,
		Icon:        m.Icon,
		Title:       m.Title,
		Description: m.Description,
	}
}

// ─── Day records ────────────────────────────────────────────────────────────

// Mood is an optional per-day mood note.
type Mood struct {
	Emoji string `json:"emoji,omitempty"`
	Text  string `json:"text,omitempty"`
}

// DayRecord is one day in the ledger. Goal values are stored as ints
// (checkbox goals as 0/1). Completed is the sticky perfect-day flag: set
// once the first time all goals and missions are done, never cleared,
// so the perfect-day celebration and XP bonus fire exactly once.
type DayRecord struct {
	Date         string                     `json:"date"`
	Goals        map[string]int             `json:"goals"`
	Missions     map[string]MissionInstance `json:"missions"`
	MissionOrder []string                   `json:"mission_order"`
	Mood         Mood                       `json:"mood"`
	Completed    bool                       `json:"completed"`
}

// NewDayRecord creates a zeroed record for a date, with one goal entry
// per definition and no missions yet.
func NewDayRecord(date string, goals []GoalDef) *DayRecord {
	rec := &DayRecord{
		Date:     date,
		Goals:    make(map[string]int, len(goals)),
		Missions: make(map[string]MissionInstance),
	}
	for _, g := range goals {
		rec.Goals[g.ID] = 0
	}
	return rec
}

// MissionsDone counts completed missions on this day.
func (d *DayRecord) MissionsDone() int {
	n := 0
	for _, m := range d.Missions {
		if m.Completed {
			n++
		}
	}
	return n
}

// AllMissionsDone reports whether every mission on this day is complete.
// A day with no missions counts as done (matches the week-view and
// perfect-day semantics for legacy records).
func (d *DayRecord) AllMissionsDone() bool {
	for _, m := range d.Missions {
		if !m.Completed {
			return false
		}
	}
	return true
}

// DayStatus summarizes a day for the week view.
type DayStatus string

const (
	DayCompleted DayStatus = "completed"
	DayPartial   DayStatus = "partial"
	DayMissed    DayStatus = "missed"
)

// WeekDay is one entry of the week view projection.
type WeekDay struct {
	Date              string    `json:"date"`
	DayName           string    `json:"day_name"`
	DayNumber         int       `json:"day_number"`
	GoalsCompleted    int       `json:"goals_completed"`
	TotalGoals        int       `json:"total_goals"`
	MissionsCompleted int       `json:"missions_completed"`
	TotalMissions     int       `json:"total_missions"`
	Status            DayStatus `json:"status"`
	IsToday           bool      `json:"is_today"`
}
