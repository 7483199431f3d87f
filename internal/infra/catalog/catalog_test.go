package catalog

import "testing"

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("catalog invalid: %v", err)
	}
}

func TestGoalByID(t *testing.T) {
	g, ok := GoalByID("water")
	if !ok {
		t.Fatal("water goal missing")
	}
	if g.Target != 8 || g.Unit != "cups" {
		t.Errorf("water = %+v, want target 8 cups", g)
	}

	if _, ok := GoalByID("swimming"); ok {
		t.Error("unknown goal should not resolve")
	}
}

func TestLevelForXP_Boundaries(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{349, 3},
		{350, 4},
		{43700, 50},
		{1000000, 50},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelForXP_Negative(t *testing.T) {
	if got := LevelForXP(-10); got != 1 {
		t.Errorf("LevelForXP(-10) = %d, want 1", got)
	}
}

func TestXPForLevel(t *testing.T) {
	if got := XPForLevel(1); got != 0 {
		t.Errorf("XPForLevel(1) = %d, want 0", got)
	}
	if got := XPForLevel(2); got != 100 {
		t.Errorf("XPForLevel(2) = %d, want 100", got)
	}
	if got := XPForLevel(MaxLevel()); got != 43700 {
		t.Errorf("XPForLevel(max) = %d, want 43700", got)
	}
}

func TestTitleForLevel(t *testing.T) {
	if got := TitleForLevel(1); got != "Rookie" {
		t.Errorf("TitleForLevel(1) = %q, want Rookie", got)
	}
	if got := TitleForLevel(MaxLevel()); got != "Omniversal Eternal" {
		t.Errorf("TitleForLevel(max) = %q, want Omniversal Eternal", got)
	}
}

func TestMissionPool(t *testing.T) {
	if len(Missions) != 59 {
		t.Errorf("missions = %d, want 59", len(Missions))
	}

	// Every mission must carry badge metadata for minting.
	for _, m := range Missions {
		if _, ok := Badges[m.ID]; !ok {
			t.Errorf("mission %s has no badge metadata", m.ID)
		}
	}
}

func TestBadgeCatalogCoverage(t *testing.T) {
	for _, g := range Goals {
		if _, ok := Badges[g.ID]; !ok {
			t.Errorf("goal %s has no badge metadata", g.ID)
		}
	}
	for _, id := range []string{BadgeGoalMaster, BadgeMissionHero, BadgePerfectDay} {
		if _, ok := Badges[id]; !ok {
			t.Errorf("combo badge %s missing", id)
		}
	}
}

func TestAchievementThresholdsIncrease(t *testing.T) {
	for _, a := range Achievements {
		for i := 1; i < len(a.Levels); i++ {
			if a.Levels[i].Threshold <= a.Levels[i-1].Threshold {
				t.Errorf("%s: threshold %d (%d) not above %d",
					a.ID, i, a.Levels[i].Threshold, a.Levels[i-1].Threshold)
			}
		}
	}
}
