package cli

import (
	"fmt"

	"github.com/habitquest/habitquest/internal/app/tracker"
	"github.com/habitquest/habitquest/internal/daemon"
	"github.com/habitquest/habitquest/internal/domain"
	"github.com/habitquest/habitquest/internal/infra/store"
)

// dataDir resolves the data directory from config, falling back to the
// default home.
func dataDir() string {
	cfg, err := daemon.LoadConfig()
	if err != nil || cfg.Data.Dir == "" {
		return daemon.HabitHome()
	}
	return cfg.Data.Dir
}

// openTracker opens the store and builds a tracker engine. The caller
// must invoke the returned close func.
func openTracker() (*tracker.Engine, func(), error) {
	db, err := store.Open(dataDir())
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	eng, err := tracker.New(db)
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("init tracker: %w", err)
	}

	return eng, func() { _ = db.Close() }, nil
}

// printRewards prints the badges, perfect-day bonus, and level-up a
// mutation produced, if any.
func printRewards(badges []domain.Badge, perfectDay bool, levelUp *domain.LevelUp) {
	for _, b := range badges {
		fmt.Printf("  %s Badge earned: %s\n", b.Icon, b.Name)
	}
	if perfectDay {
		fmt.Println("  🎉 Perfect day! All goals and missions completed (+25 XP)")
	}
	if levelUp != nil {
		fmt.Printf("  ⬆️  Level up! Level %d — %s\n", levelUp.NewLevel, levelUp.Title)
	}
}

// checkmark renders a done/not-done marker.
func checkmark(done bool) string {
	if done {
		return "✓"
	}
	return "·"
}
