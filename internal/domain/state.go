package domain

// SchemaVersion is the persisted-state format version. The original
// blob was versionless; imports of documents with a different or
// missing version are rejected.
const SchemaVersion = 1

// Statistics are fully derived from the ledger and recomputed on
// demand — they are a report, not a source of truth.
type Statistics struct {
	TotalDays     int `json:"total_days"`
	PerfectDays   int `json:"perfect_days"`
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
	TotalMissions int `json:"total_missions"`
}

// State is the aggregate persisted as a single snapshot: the day-keyed
// ledger plus everything derived from it and the progression state.
type State struct {
	SchemaVersion int                             `json:"schema_version"`
	Today         string                          `json:"today"`
	History       map[string]*DayRecord           `json:"history"`
	Badges        []Badge                         `json:"badges"`
	Achievements  map[string]*AchievementProgress `json:"achievements"`
	Progression   Progression                     `json:"progression"`
	Stats         Statistics                      `json:"stats"`
}

// NewState returns an empty aggregate.
func NewState() *State {
	return &State{
		SchemaVersion: SchemaVersion,
		History:       make(map[string]*DayRecord),
		Achievements:  make(map[string]*AchievementProgress),
	}
}

// HasBadge reports whether a badge ID is already in the set.
func (s *State) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

// Day returns the record for a date key, or nil if never created.
func (s *State) Day(date string) *DayRecord {
	return s.History[date]
}
