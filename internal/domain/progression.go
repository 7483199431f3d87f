package domain

// ─── XP / Level Types ───────────────────────────────────────────────────────

// XPHistoryLimit bounds the XP grant log; oldest entries are evicted.
const XPHistoryLimit = 50

// LevelUpEvent records a level being reached.
type LevelUpEvent struct {
	Level   int    `json:"level"`
	Date    string `json:"date"`
	TotalXP int    `json:"total_xp"`
}

// XPEvent records a single XP grant.
type XPEvent struct {
	Amount  int    `json:"amount"`
	Reason  string `json:"reason"`
	Date    string `json:"date"`
	TotalXP int    `json:"total_xp"`
}

// Progression is the XP/level state. TotalXP only ever grows.
// CurrentLevel is a pure function of TotalXP against the catalog level
// table — it is re-derived on every grant and on every load, so a
// threshold-table revision between versions cannot leave it stale.
type Progression struct {
	TotalXP      int            `json:"total_xp"`
	CurrentLevel int            `json:"current_level"`
	LevelHistory []LevelUpEvent `json:"level_history"`
	XPHistory    []XPEvent      `json:"xp_history"`
}

// RecordGrant appends an XP grant and trims the history to the limit.
func (p *Progression) RecordGrant(ev XPEvent) {
	p.XPHistory = append(p.XPHistory, ev)
	if len(p.XPHistory) > XPHistoryLimit {
		p.XPHistory = p.XPHistory[len(p.XPHistory)-XPHistoryLimit:]
	}
}

// LevelUp describes a level transition returned to callers so they can
// drive celebratory effects.
type LevelUp struct {
	OldLevel int    `json:"old_level"`
	NewLevel int    `json:"new_level"`
	Title    string `json:"title"`
}

// ProgressionView is the render-ready XP summary.
type ProgressionView struct {
	Level       int     `json:"level"`
	Title       string  `json:"title"`
	TotalXP     int     `json:"total_xp"`
	XPIntoLevel int     `json:"xp_into_level"`
	XPForLevel  int     `json:"xp_for_level"`
	XPRemaining int     `json:"xp_remaining"`
	Progress    float64 `json:"progress"`
	IsMaxLevel  bool    `json:"is_max_level"`
}
