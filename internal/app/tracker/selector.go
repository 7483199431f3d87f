package tracker

import (
	"strings"

	"github.com/habitquest/habitquest/internal/domain"
)

// Mission selection is reproducible, not random: the same date always
// yields the same missions, across calls and across restarts. The
// shuffle draws come from a fixed linear congruential generator so the
// sequence never depends on process state.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// lcgFrac maps an integer to a deterministic value in [0, 1).
func lcgFrac(x int64) float64 {
	return float64((x*lcgMultiplier+lcgIncrement)%lcgModulus) / lcgModulus
}

// dateSeed derives the shuffle seed from a YYYY-MM-DD key by reading
// its digits as one integer (2025-03-14 → 20250314). Distinct dates
// give distinct seeds.
func dateSeed(date string) int64 {
	var seed int64
	for _, r := range strings.ReplaceAll(date, "-", "") {
		if r < '0' || r > '9' {
			continue
		}
		seed = seed*10 + int64(r-'0')
	}
	return seed
}

// SelectMissions picks count missions for a date: a Fisher–Yates
// shuffle over a copy of the pool, seeded by the date, then the first
// count entries. The pool itself is never reordered. If the pool is
// smaller than count, the whole shuffled pool is returned.
func SelectMissions(date string, pool []domain.MissionDef, count int) []domain.MissionDef {
	shuffled := make([]domain.MissionDef, len(pool))
	copy(shuffled, pool)

	seed := dateSeed(date)
	for i := len(shuffled); i >= 1; i-- {
		j := int(lcgFrac(seed+int64(i)) * float64(i))
		shuffled[i-1], shuffled[j] = shuffled[j], shuffled[i-1]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}
