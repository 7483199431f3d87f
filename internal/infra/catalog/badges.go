package catalog

import "github.com/habitquest/habitquest/internal/domain"

// Combo badge ids. These are minted per-day like goal/mission badges.
const (
	BadgeGoalMaster  = "goal_master"
	BadgeMissionHero = "mission_hero"
	BadgePerfectDay  = "perfect_day"
)

// Badges maps a goal id, mission id, or combo name to the badge minted
// when it completes. One badge per source per day; the engine
// deduplicates by "{id}_{date}".
var Badges = map[string]domain.BadgeMeta{
	// Daily goal badges
	"water":    {Icon: "💧", Name: "Hydration Hero"},
	"stretch":  {Icon: "🧘", Name: "Flexibility Star"},
	"duolingo": {Icon: "🦉", Name: "Language Learner"},
	"reading":  {Icon: "📚", Name: "Book Worm"},

	// Mission badges
	"vegetables":        {Icon: "🥕", Name: "Veggie Champion"},
	"pushups":           {Icon: "💪", Name: "Strong Arms"},
	"kitchen_help":      {Icon: "🧹", Name: "Kitchen Helper"},
	"outdoor_time":      {Icon: "🌳", Name: "Nature Explorer"},
	"friend_call":       {Icon: "📞", Name: "Social Butterfly"},
	"creative_time":     {Icon: "🎨", Name: "Creative Soul"},
	"music_time":        {Icon: "🎵", Name: "Music Maker"},
	"organize":          {Icon: "📦", Name: "Tidy Master"},
	"gratitude":         {Icon: "🙏", Name: "Grateful Heart"},
	"learn_fact":        {Icon: "🧠", Name: "Fun Fact Finder"},
	"help_family":       {Icon: "❤️", Name: "Family Helper"},
	"walk":              {Icon: "🚶", Name: "Step Counter"},
	"journal":           {Icon: "📔", Name: "Story Teller"},
	"teeth_care":        {Icon: "🦷", Name: "Pearly Whites"},
	"room_clean":        {Icon: "🛏️", Name: "Room Ranger"},
	"dance":             {Icon: "💃", Name: "Dance Party"},
	"meditate":          {Icon: "🧘‍♀️", Name: "Zen Master"},
	"compliment":        {Icon: "😊", Name: "Kind Words"},
	"board_game":        {Icon: "🎲", Name: "Game Master"},
	"healthy_snack":     {Icon: "🍎", Name: "Smart Snacker"},
	"early_bed":         {Icon: "😴", Name: "Sleep Champion"},
	"no_phone":          {Icon: "📱", Name: "Digital Detox"},
	"jumping_jacks":     {Icon: "🏃‍♂️", Name: "Energy Booster"},
	"fruit_power":       {Icon: "🍓", Name: "Fruit Power"},
	"deep_breaths":      {Icon: "🌬️", Name: "Breath Master"},
	"origami":           {Icon: "🦢", Name: "Paper Artist"},
	"story_write":       {Icon: "✍️", Name: "Story Creator"},
	"photo_take":        {Icon: "📸", Name: "Photographer"},
	"new_word":          {Icon: "📖", Name: "Word Wizard"},
	"poem_write":        {Icon: "📝", Name: "Poet Laureate"},
	"doodle_time":       {Icon: "✏️", Name: "Doodle Master"},
	"riddle_solve":      {Icon: "🧩", Name: "Riddle Solver"},
	"random_kindness":   {Icon: "💝", Name: "Random Kindness"},
	"thank_you_note":    {Icon: "💌", Name: "Grateful Writer"},
	"smile_spread":      {Icon: "😄", Name: "Smile Spreader"},
	"hug_give":          {Icon: "🤗", Name: "Hug Ambassador"},
	"meal_prep":         {Icon: "🥪", Name: "Chef Helper"},
	"laundry_fold":      {Icon: "👕", Name: "Laundry Assistant"},
	"schedule_plan":     {Icon: "📅", Name: "Planning Pro"},
	"joke_learn":        {Icon: "😂", Name: "Comedy Star"},
	"magic_trick":       {Icon: "🎩", Name: "Magician"},
	"tongue_twister":    {Icon: "👅", Name: "Tongue Twister Pro"},
	"scavenger_hunt":    {Icon: "🔍", Name: "Treasure Hunter"},
	"balance_challenge": {Icon: "⚖️", Name: "Balance Master"},
	"bird_watch":        {Icon: "🐦", Name: "Bird Watcher"},
	"cloud_shapes":      {Icon: "☁️", Name: "Cloud Reader"},
	"garden_explore":    {Icon: "🌻", Name: "Garden Explorer"},
	"sunset_watch":      {Icon: "🌅", Name: "Sunset Appreciator"},
	"typing_practice":   {Icon: "⌨️", Name: "Typing Ninja"},
	"memory_game":       {Icon: "🧠", Name: "Memory Champion"},
	"future_self":       {Icon: "🔮", Name: "Future Thinker"},
	"proud_moment":      {Icon: "🌟", Name: "Pride Keeper"},
	"fear_face":         {Icon: "🦁", Name: "Courage Builder"},
	"interview_elder":   {Icon: "👴", Name: "Story Collector"},
	"map_draw":          {Icon: "🧭", Name: "Cartographer"},
	"weather_predict":   {Icon: "🌤️", Name: "Weather Prophet"},
	"star_gaze":         {Icon: "⭐", Name: "Star Gazer"},
	"shadow_play":       {Icon: "👥", Name: "Shadow Artist"},
	"color_hunt":        {Icon: "🌈", Name: "Rainbow Hunter"},

	// Combo badges
	BadgePerfectDay:  {Icon: "⭐", Name: "Perfect Day"},
	BadgeGoalMaster:  {Icon: "🎯", Name: "Goal Master"},
	BadgeMissionHero: {Icon: "🎖️", Name: "Mission Hero"},
}
