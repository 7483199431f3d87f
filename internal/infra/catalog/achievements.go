package catalog

import "github.com/habitquest/habitquest/internal/domain"

// Achievement ids. Each maps to a cumulative metric over the whole
// ledger; the reward engine owns the metric functions.
const (
	AchWaterHero      = "water_hero"
	AchReadingMaster  = "reading_master"
	AchStretchGuru    = "stretch_guru"
	AchLanguageLegend = "language_legend"
	AchMissionMaster  = "mission_master"
	AchPerfectDays    = "perfect_days"
)

// Achievements is the fixed ladder catalog: 6 achievements, 20 levels
// each, thresholds strictly increasing.
var Achievements = []domain.AchievementDef{
	{
		ID: AchWaterHero, Name: "Water Hero", Icon: "🌊",
		Description: "Total cups of water consumed", Goal: "8 cups daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 8, Reward: "First Sip"},
			{Threshold: 24, Reward: "Hydration Starter"},
			{Threshold: 48, Reward: "Water Walker"},
			{Threshold: 80, Reward: "Droplet Collector"},
			{Threshold: 120, Reward: "Stream Walker"},
			{Threshold: 200, Reward: "River Runner"},
			{Threshold: 300, Reward: "Lake Legend"},
			{Threshold: 450, Reward: "Ocean Master"},
			{Threshold: 650, Reward: "Tsunami Tamer"},
			{Threshold: 900, Reward: "Water Bender"},
			{Threshold: 1200, Reward: "Hydration God"},
			{Threshold: 1600, Reward: "Aqua Supreme"},
			{Threshold: 2100, Reward: "H2O Immortal"},
			{Threshold: 2700, Reward: "Water Deity"},
			{Threshold: 3400, Reward: "Ocean Emperor"},
			{Threshold: 4200, Reward: "Hydration Master"},
			{Threshold: 5100, Reward: "Water Legend"},
			{Threshold: 6100, Reward: "Aqua Immortal"},
			{Threshold: 7200, Reward: "H2O God"},
			{Threshold: 8400, Reward: "Water Supreme"},
		},
	},
	{
		ID: AchReadingMaster, Name: "Reading Master", Icon: "📖",
		Description: "Total minutes of reading", Goal: "30 minutes daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 30, Reward: "First Page"},
			{Threshold: 90, Reward: "Reading Starter"},
			{Threshold: 180, Reward: "Page Turner"},
			{Threshold: 300, Reward: "Chapter Champion"},
			{Threshold: 450, Reward: "Book Browser"},
			{Threshold: 750, Reward: "Story Seeker"},
			{Threshold: 1200, Reward: "Novel Navigator"},
			{Threshold: 1800, Reward: "Literature Lover"},
			{Threshold: 2700, Reward: "Reading Royalty"},
			{Threshold: 4000, Reward: "Book Deity"},
			{Threshold: 6000, Reward: "Word Wizard"},
			{Threshold: 9000, Reward: "Story Sage"},
			{Threshold: 13000, Reward: "Reading Master"},
			{Threshold: 18000, Reward: "Book Legend"},
			{Threshold: 24000, Reward: "Literature God"},
			{Threshold: 31000, Reward: "Reading Immortal"},
			{Threshold: 39000, Reward: "Word Supreme"},
			{Threshold: 48000, Reward: "Story Master"},
			{Threshold: 58000, Reward: "Book Emperor"},
			{Threshold: 69000, Reward: "Reading Supreme"},
		},
	},
	{
		ID: AchStretchGuru, Name: "Stretch Guru", Icon: "🤸",
		Description: "Total minutes of stretching", Goal: "15 minutes daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 15, Reward: "First Stretch"},
			{Threshold: 45, Reward: "Stretch Starter"},
			{Threshold: 90, Reward: "Flexibility Finder"},
			{Threshold: 150, Reward: "Bend Builder"},
			{Threshold: 225, Reward: "Pose Professional"},
			{Threshold: 375, Reward: "Flexibility Master"},
			{Threshold: 600, Reward: "Stretch Superstar"},
			{Threshold: 900, Reward: "Yoga Yogi"},
			{Threshold: 1350, Reward: "Zen Warrior"},
			{Threshold: 1950, Reward: "Balance Boss"},
			{Threshold: 2700, Reward: "Flexibility Phoenix"},
			{Threshold: 3600, Reward: "Stretch Master"},
			{Threshold: 4650, Reward: "Yoga Legend"},
			{Threshold: 5850, Reward: "Flexibility God"},
			{Threshold: 7200, Reward: "Stretch Immortal"},
			{Threshold: 8700, Reward: "Yoga Supreme"},
			{Threshold: 10350, Reward: "Flexibility Emperor"},
			{Threshold: 12150, Reward: "Stretch Legend"},
			{Threshold: 14100, Reward: "Yoga Master"},
			{Threshold: 16200, Reward: "Flexibility Supreme"},
		},
	},
	{
		ID: AchLanguageLegend, Name: "Language Legend", Icon: "🗣️",
		Description: "Days of completing Duolingo", Goal: "1 lesson daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 1, Reward: "First Lesson"},
			{Threshold: 3, Reward: "Language Starter"},
			{Threshold: 7, Reward: "Word Warrior"},
			{Threshold: 14, Reward: "Language Learner"},
			{Threshold: 21, Reward: "Vocabulary Victor"},
			{Threshold: 30, Reward: "Grammar Guardian"},
			{Threshold: 45, Reward: "Fluency Fighter"},
			{Threshold: 60, Reward: "Polyglot Pro"},
			{Threshold: 80, Reward: "Language Lord"},
			{Threshold: 100, Reward: "Tongue Twister"},
			{Threshold: 125, Reward: "Babel Builder"},
			{Threshold: 150, Reward: "Universal Speaker"},
			{Threshold: 180, Reward: "Language Master"},
			{Threshold: 210, Reward: "Word Legend"},
			{Threshold: 245, Reward: "Grammar God"},
			{Threshold: 280, Reward: "Fluency Immortal"},
			{Threshold: 320, Reward: "Polyglot Supreme"},
			{Threshold: 365, Reward: "Language Emperor"},
			{Threshold: 400, Reward: "Tongue Master"},
			{Threshold: 450, Reward: "Babel Supreme"},
		},
	},
	{
		ID: AchMissionMaster, Name: "Mission Master", Icon: "🎯",
		Description: "Total missions completed", Goal: "3 missions daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 3, Reward: "First Mission"},
			{Threshold: 9, Reward: "Mission Starter"},
			{Threshold: 18, Reward: "Task Tackler"},
			{Threshold: 30, Reward: "Mission Rookie"},
			{Threshold: 45, Reward: "Quest Completer"},
			{Threshold: 75, Reward: "Challenge Champion"},
			{Threshold: 120, Reward: "Mission Expert"},
			{Threshold: 180, Reward: "Quest Master"},
			{Threshold: 270, Reward: "Mission Legend"},
			{Threshold: 400, Reward: "Ultimate Achiever"},
			{Threshold: 600, Reward: "Mission Immortal"},
			{Threshold: 900, Reward: "Quest God"},
			{Threshold: 1350, Reward: "Mission Supreme"},
			{Threshold: 2000, Reward: "Quest Emperor"},
			{Threshold: 3000, Reward: "Mission Master"},
			{Threshold: 4500, Reward: "Quest Legend"},
			{Threshold: 6750, Reward: "Mission God"},
			{Threshold: 10000, Reward: "Quest Immortal"},
			{Threshold: 15000, Reward: "Mission Supreme II"},
			{Threshold: 22500, Reward: "Quest Master II"},
		},
	},
	{
		ID: AchPerfectDays, Name: "Perfect Days", Icon: "✨",
		Description: "Days with all goals and missions complete", Goal: "All goals + missions daily",
		Levels: []domain.AchievementLevel{
			{Threshold: 1, Reward: "Perfect Starter"},
			{Threshold: 3, Reward: "Excellence Seeker"},
			{Threshold: 7, Reward: "Perfection Pro"},
			{Threshold: 14, Reward: "Flawless Fighter"},
			{Threshold: 21, Reward: "Perfect Master"},
			{Threshold: 30, Reward: "Excellence Expert"},
			{Threshold: 45, Reward: "Perfection Legend"},
			{Threshold: 60, Reward: "Flawless God"},
			{Threshold: 80, Reward: "Perfect Immortal"},
			{Threshold: 100, Reward: "Ultimate Perfect"},
			{Threshold: 125, Reward: "Excellence Supreme"},
			{Threshold: 150, Reward: "Perfection Emperor"},
			{Threshold: 180, Reward: "Flawless Master"},
			{Threshold: 210, Reward: "Perfect Legend"},
			{Threshold: 250, Reward: "Excellence God"},
			{Threshold: 300, Reward: "Perfection Immortal"},
			{Threshold: 365, Reward: "Flawless Supreme"},
			{Threshold: 450, Reward: "Perfect Emperor"},
			{Threshold: 550, Reward: "Excellence Master"},
			{Threshold: 700, Reward: "Perfection Supreme"},
		},
	},
}

// AchievementByID looks up an achievement definition.
func AchievementByID(id string) (domain.AchievementDef, bool) {
	for _, a := range Achievements {
		if a.ID == id {
			return a, true
		}
	}
	return domain.AchievementDef{}, false
}
