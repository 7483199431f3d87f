package catalog

import "github.com/habitquest/habitquest/internal/domain"

// Missions is the pool the daily selector draws from. Adding an entry
// here (plus its badge metadata in badges.go) is all it takes to put a
// new mission into rotation.
var Missions = []domain.MissionDef{
	{ID: "vegetables", Icon: "🥕", Title: "Veggie Champion", Description: "Eat all your vegetables at dinner"},
	{ID: "pushups", Icon: "💪", Title: "Strong Arms", Description: "Do 10 push-ups (or as many as you can!)"},
	{ID: "kitchen_help", Icon: "🧹", Title: "Kitchen Helper", Description: "Help clean up after a meal"},
	{ID: "outdoor_time", Icon: "🌳", Title: "Nature Explorer", Description: "Spend 20 minutes outside"},
	{ID: "friend_call", Icon: "📞", Title: "Social Butterfly", Description: "Call or video chat with a friend or family member"},
	{ID: "creative_time", Icon: "🎨", Title: "Creative Soul", Description: "Draw, paint, or do a craft project for 15 minutes"},
	{ID: "music_time", Icon: "🎵", Title: "Music Maker", Description: "Play an instrument or sing for 10 minutes"},
	{ID: "organize", Icon: "📦", Title: "Tidy Master", Description: "Organize your desk or a drawer"},
	{ID: "gratitude", Icon: "🙏", Title: "Grateful Heart", Description: "Write down 3 things you're grateful for"},
	{ID: "learn_fact", Icon: "🧠", Title: "Fun Fact Finder", Description: "Learn one interesting fact about something new"},
	{ID: "help_family", Icon: "❤️", Title: "Family Helper", Description: "Do something nice for a family member"},
	{ID: "walk", Icon: "🚶", Title: "Step Counter", Description: "Take a 15-minute walk around your neighborhood"},
	{ID: "journal", Icon: "📔", Title: "Story Teller", Description: "Write about your day for 5 minutes"},
	{ID: "teeth_care", Icon: "🦷", Title: "Pearly Whites", Description: "Brush your teeth extra well tonight"},
	{ID: "room_clean", Icon: "🛏️", Title: "Room Ranger", Description: "Make your bed and tidy up your room"},
	{ID: "dance", Icon: "💃", Title: "Dance Party", Description: "Dance to your favorite song"},
	{ID: "meditate", Icon: "🧘‍♀️", Title: "Zen Master", Description: "Sit quietly and breathe deeply for 5 minutes"},
	{ID: "compliment", Icon: "😊", Title: "Kind Words", Description: "Give someone a genuine compliment"},
	{ID: "board_game", Icon: "🎲", Title: "Game Master", Description: "Play a board game or card game with family"},
	{ID: "healthy_snack", Icon: "🍎", Title: "Smart Snacker", Description: "Choose a healthy snack instead of junk food"},
	{ID: "early_bed", Icon: "😴", Title: "Sleep Champion", Description: "Go to bed 15 minutes earlier than usual"},
	{ID: "no_phone", Icon: "📱", Title: "Digital Detox", Description: "Take a 30-minute break from screens"},

	// Physical & health
	{ID: "jumping_jacks", Icon: "🏃‍♂️", Title: "Energy Booster", Description: "Do 25 jumping jacks to get your heart pumping"},
	{ID: "fruit_power", Icon: "🍓", Title: "Fruit Power", Description: "Eat two different types of fruit today"},
	{ID: "deep_breaths", Icon: "🌬️", Title: "Breath Master", Description: "Take 10 deep breaths when you feel stressed"},

	// Creative & learning
	{ID: "origami", Icon: "🦢", Title: "Paper Artist", Description: "Make an origami animal or flower"},
	{ID: "story_write", Icon: "✍️", Title: "Story Creator", Description: "Write a short story with exactly 50 words"},
	{ID: "photo_take", Icon: "📸", Title: "Photographer", Description: "Take 5 creative photos of ordinary objects"},
	{ID: "new_word", Icon: "📖", Title: "Word Wizard", Description: "Learn a new word and use it in conversation"},
	{ID: "poem_write", Icon: "📝", Title: "Poet Laureate", Description: "Write a haiku about your day"},
	{ID: "doodle_time", Icon: "✏️", Title: "Doodle Master", Description: "Fill a page with fun doodles and patterns"},
	{ID: "riddle_solve", Icon: "🧩", Title: "Riddle Solver", Description: "Solve three riddles or brain teasers"},

	// Social & kindness
	{ID: "random_kindness", Icon: "💝", Title: "Random Kindness", Description: "Do one unexpected act of kindness"},
	{ID: "thank_you_note", Icon: "💌", Title: "Grateful Writer", Description: "Write a thank you note to someone special"},
	{ID: "smile_spread", Icon: "😄", Title: "Smile Spreader", Description: "Make 5 people smile today"},
	{ID: "hug_give", Icon: "🤗", Title: "Hug Ambassador", Description: "Give 3 genuine hugs to people you care about"},

	// Life skills & responsibility
	{ID: "meal_prep", Icon: "🥪", Title: "Chef Helper", Description: "Help prepare lunch or a snack"},
	{ID: "laundry_fold", Icon: "👕", Title: "Laundry Assistant", Description: "Fold and put away your clean clothes"},
	{ID: "schedule_plan", Icon: "📅", Title: "Planning Pro", Description: "Plan tomorrow's activities and priorities"},

	// Fun & games
	{ID: "joke_learn", Icon: "😂", Title: "Comedy Star", Description: "Learn a new joke and tell it to someone"},
	{ID: "magic_trick", Icon: "🎩", Title: "Magician", Description: "Learn and perform a simple magic trick"},
	{ID: "tongue_twister", Icon: "👅", Title: "Tongue Twister Pro", Description: "Master saying a difficult tongue twister"},
	{ID: "scavenger_hunt", Icon: "🔍", Title: "Treasure Hunter", Description: "Find 5 red things in your house"},
	{ID: "balance_challenge", Icon: "⚖️", Title: "Balance Master", Description: "Stand on one foot for 30 seconds"},

	// Nature & environment
	{ID: "bird_watch", Icon: "🐦", Title: "Bird Watcher", Description: "Spot and identify 3 different birds"},
	{ID: "cloud_shapes", Icon: "☁️", Title: "Cloud Reader", Description: "Find shapes in the clouds for 10 minutes"},
	{ID: "garden_explore", Icon: "🌻", Title: "Garden Explorer", Description: "Examine flowers, leaves, or insects closely"},
	{ID: "sunset_watch", Icon: "🌅", Title: "Sunset Appreciator", Description: "Watch the sunrise or sunset mindfully"},

	// Technology & skills
	{ID: "typing_practice", Icon: "⌨️", Title: "Typing Ninja", Description: "Practice typing for 10 minutes"},

	// Mind & reflection
	{ID: "memory_game", Icon: "🧠", Title: "Memory Champion", Description: "Play a memory game or do mental math"},
	{ID: "future_self", Icon: "🔮", Title: "Future Thinker", Description: "Write a letter to your future self"},
	{ID: "proud_moment", Icon: "🌟", Title: "Pride Keeper", Description: "Write about something that made you proud today"},
	{ID: "fear_face", Icon: "🦁", Title: "Courage Builder", Description: "Do one small thing that scares you"},

	// Adventure & exploration
	{ID: "interview_elder", Icon: "👴", Title: "Story Collector", Description: "Ask an older person about their childhood"},
	{ID: "map_draw", Icon: "🧭", Title: "Cartographer", Description: "Draw a map of your neighborhood or room"},

	// Seasonal & special
	{ID: "weather_predict", Icon: "🌤️", Title: "Weather Prophet", Description: "Predict tomorrow's weather and check if you're right"},
	{ID: "star_gaze", Icon: "⭐", Title: "Star Gazer", Description: "Look at stars and try to find constellations"},
	{ID: "shadow_play", Icon: "👥", Title: "Shadow Artist", Description: "Make shadow puppets and tell a story"},
	{ID: "color_hunt", Icon: "🌈", Title: "Rainbow Hunter", Description: "Find objects in all colors of the rainbow"},
}

// MissionByID looks up a mission definition in the pool.
func MissionByID(id string) (domain.MissionDef, bool) {
	for _, m := range Missions {
		if m.ID == id {
			return m, true
		}
	}
	return domain.MissionDef{}, false
}
