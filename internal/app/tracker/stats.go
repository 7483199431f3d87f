package tracker

import (
	"sort"
	"time"

	"github.com/habitquest/habitquest/internal/domain"
)

// recomputeStats re-derives the statistics report from the ledger.
// Statistics are never maintained incrementally — they are a projection
// of the history, rebuilt after every mutation.
func (e *Engine) recomputeStats() {
	e.state.Stats = domain.Statistics{
		TotalDays:     len(e.state.History),
		PerfectDays:   e.perfectDayCount(),
		TotalMissions: e.totalMissionsDone(),
	}
	e.state.Stats.CurrentStreak, e.state.Stats.LongestStreak = e.streaks()
}

// streaks computes the current and longest runs of consecutive calendar
// days carrying the sticky completed flag. A missing day or a
// non-completed record breaks the run. The current streak counts back
// from today, or from yesterday when today is not (yet) complete.
func (e *Engine) streaks() (current, longest int) {
	type day struct {
		t         time.Time
		completed bool
	}

	days := make([]day, 0, len(e.state.History))
	for key, rec := range e.state.History {
		t, err := time.Parse(domain.DateLayout, key)
		if err != nil {
			continue
		}
		days = append(days, day{t: t, completed: rec.Completed})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].t.Before(days[j].t) })

	run := 0
	var prev time.Time
	for _, d := range days {
		if !d.completed {
			run = 0
			prev = time.Time{}
			continue
		}
		if !prev.IsZero() && d.t.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		prev = d.t
		if run > longest {
			longest = run
		}
	}

	// Current streak walks back from today; an incomplete today does
	// not break it (the day is still in progress), a missing or
	// incomplete earlier day does.
	today, err := time.Parse(domain.DateLayout, e.state.Today)
	if err != nil {
		return 0, longest
	}
	cursor := today
	if rec := e.state.History[e.state.Today]; rec == nil || !rec.Completed {
		cursor = today.AddDate(0, 0, -1)
	}
	for {
		rec := e.state.History[domain.DateKey(cursor)]
		if rec == nil || !rec.Completed {
			break
		}
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return current, longest
}

// Statistics returns the derived report.
func (e *Engine) Statistics() domain.Statistics {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.recomputeStats()
	return e.state.Stats
}
