// Package metrics provides Prometheus metrics for the habit engine:
// counters for completions, rewards, and XP, plus a gauge for the
// current level. Registered on import; exposed by the API's /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Completions ────────────────────────────────────────────────────────────

// GoalsCompleted counts first-time-today goal completions by goal id.
var GoalsCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "goals_completed_total",
	Help:      "Total goal completion transitions.",
}, []string{"goal"})

// MissionsCompleted counts mission completion transitions.
var MissionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "missions_completed_total",
	Help:      "Total mission completion transitions.",
})

// PerfectDays counts days that first became perfect.
var PerfectDays = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "perfect_days_total",
	Help:      "Total perfect-day transitions.",
})

// ─── Rewards ────────────────────────────────────────────────────────────────

// BadgesAwarded counts newly minted badges by type.
var BadgesAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "badges_awarded_total",
	Help:      "Total badges awarded.",
}, []string{"type"})

// AchievementLevels counts achievement level unlocks by achievement id.
var AchievementLevels = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "achievement_levels_total",
	Help:      "Total achievement levels unlocked.",
}, []string{"achievement"})

// ─── Progression ────────────────────────────────────────────────────────────

// XPGranted counts experience points granted.
var XPGranted = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "xp_granted_total",
	Help:      "Total experience points granted.",
})

// LevelUps counts level-up transitions.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "habitquest",
	Name:      "level_ups_total",
	Help:      "Total level-up transitions.",
})

// CurrentLevel reports the current progression level.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "habitquest",
	Name:      "current_level",
	Help:      "Current progression level.",
})
