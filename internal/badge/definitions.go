package badge

// Definitions is the canonical badge list. Keep IDs stable: earned-badge
// documents reference them as foreign keys, and clients cache them.
func Definitions() []Definition {
	return []Definition{
		// Hike count milestones
		{ID: "first", Name: "First Steps", Icon: "🥾", Category: CategoryCount, Requirement: 1, Description: "Complete your first hike"},
		{ID: "explorer", Name: "Explorer", Icon: "🗺️", Category: CategoryCount, Requirement: 5, Description: "Complete 5 hikes"},
		{ID: "adventurer", Name: "Adventurer", Icon: "⛰️", Category: CategoryCount, Requirement: 10, Description: "Complete 10 hikes"},
		{ID: "trailblazer", Name: "Trailblazer", Icon: "🔥", Category: CategoryCount, Requirement: 25, Description: "Complete 25 hikes"},
		{ID: "legend", Name: "Hiking Legend", Icon: "👑", Category: CategoryCount, Requirement: 50, Description: "Complete 50 hikes"},
		{ID: "century", Name: "Century Club", Icon: "💯", Category: CategoryCount, Requirement: 100, Description: "Complete 100 hikes"},

		// Distance milestones (total miles)
		{ID: "distance10", Name: "First 10", Icon: "🏃", Category: CategoryDistance, Requirement: 10, Description: "Hike 10 total miles"},
		{ID: "distance25", Name: "Quarter Century", Icon: "🚶", Category: CategoryDistance, Requirement: 25, Description: "Hike 25 total miles"},
		{ID: "distance50", Name: "Half Century", Icon: "🥇", Category: CategoryDistance, Requirement: 50, Description: "Hike 50 total miles"},
		{ID: "distance100", Name: "Centurion", Icon: "⭐", Category: CategoryDistance, Requirement: 100, Description: "Hike 100 total miles"},
		{ID: "distance250", Name: "Ultra Hiker", Icon: "💪", Category: CategoryDistance, Requirement: 250, Description: "Hike 250 total miles"},
		{ID: "distance500", Name: "Marathon Master", Icon: "🏆", Category: CategoryDistance, Requirement: 500, Description: "Hike 500 total miles"},

		// Elevation milestones (total feet climbed)
		{ID: "climber1k", Name: "Hill Climber", Icon: "🧗", Category: CategoryElevation, Requirement: 1000, Description: "Climb 1,000 feet"},
		{ID: "climber5k", Name: "Peak Climber", Icon: "🏔️", Category: CategoryElevation, Requirement: 5000, Description: "Climb 5,000 feet"},
		{ID: "kosciuszko", Name: "Kosciuszko Climber", Icon: "🏔️", Category: CategoryElevation, Requirement: 7310, Description: "Reach the height of Mt. Kosciuszko (Australia)"},
		{ID: "climber10k", Name: "Mountain Goat", Icon: "🐐", Category: CategoryElevation, Requirement: 10000, Description: "Climb 10,000 feet"},
		{ID: "elbrus", Name: "Elbrus Achiever", Icon: "⛰️", Category: CategoryElevation, Requirement: 18510, Description: "Reach the height of Mt. Elbrus (Europe)"},
		{ID: "kilimanjaro", Name: "Kilimanjaro Conqueror", Icon: "🗻", Category: CategoryElevation, Requirement: 19341, Description: "Reach the height of Mt. Kilimanjaro (Africa)"},
		{ID: "denali", Name: "Denali Master", Icon: "🏔️", Category: CategoryElevation, Requirement: 20310, Description: "Reach the height of Denali (North America)"},
		{ID: "aconcagua", Name: "Aconcagua Champion", Icon: "⛰️", Category: CategoryElevation, Requirement: 22838, Description: "Reach the height of Aconcagua (South America)"},
		{ID: "everest", Name: "Everest Dreamer", Icon: "🏔️", Category: CategoryElevation, Requirement: 29032, Description: "Reach the height of Mt. Everest (Asia)"},
		{ID: "climber50k", Name: "Sky Walker", Icon: "☁️", Category: CategoryElevation, Requirement: 50000, Description: "Climb 50,000 feet"},
		{ID: "climber100k", Name: "Altitude King", Icon: "👑", Category: CategoryElevation, Requirement: 100000, Description: "Climb 100,000 feet"},

		// Seasonal badges
		{ID: "spring", Name: "Spring Awakening", Icon: "🌸", Category: CategorySeasonal, Season: SeasonSpring, Description: "Complete a hike in spring (Mar-May)"},
		{ID: "summer", Name: "Summer Solstice", Icon: "☀️", Category: CategorySeasonal, Season: SeasonSummer, Description: "Complete a hike in summer (Jun-Aug)"},
		{ID: "fall", Name: "Fall Colors", Icon: "🍂", Category: CategorySeasonal, Season: SeasonFall, Description: "Complete a hike in autumn (Sep-Nov)"},
		{ID: "winter", Name: "Winter Warrior", Icon: "❄️", Category: CategorySeasonal, Season: SeasonWinter, Description: "Complete a hike in winter (Dec-Feb)"},
		{ID: "fourseasons", Name: "Four Seasons", Icon: "🌈", Category: CategorySeasonal, Season: SeasonAll, Requirement: 4, Description: "Complete hikes in all four seasons"},

		// Weather badges (claimed by the family)
		{ID: "rainhiker", Name: "Rain Hiker", Icon: "🌧️", Category: CategoryWeather, Description: "Complete a hike in the rain"},
		{ID: "fogwalker", Name: "Fog Walker", Icon: "🌫️", Category: CategoryWeather, Description: "Hike through fog or mist"},
		{ID: "windrider", Name: "Wind Rider", Icon: "🌬️", Category: CategoryWeather, Description: "Hike on a windy day"},
		{ID: "hotstepper", Name: "Hot Stepper", Icon: "🌡️", Category: CategoryWeather, Description: "Hike when it's over 85°F"},

		// Discovery badges
		{ID: "waterfall", Name: "Waterfall Finder", Icon: "💦", Category: CategoryDiscovery, Description: "Find a waterfall"},
		{ID: "wildlife", Name: "Wildlife Spotter", Icon: "🦌", Category: CategoryDiscovery, Description: "See a wild animal"},
		{ID: "bird", Name: "Bird Watcher", Icon: "🦅", Category: CategoryDiscovery, Description: "Spot a bird"},
		{ID: "butterfly", Name: "Butterfly Hunter", Icon: "🦋", Category: CategoryDiscovery, Description: "See a butterfly"},
		{ID: "mushroom", Name: "Fungi Finder", Icon: "🍄", Category: CategoryDiscovery, Description: "Discover mushrooms"},
		{ID: "wildflower", Name: "Flower Power", Icon: "🌸", Category: CategoryDiscovery, Description: "Find wildflowers"},
		{ID: "treeclimb", Name: "Tree Hugger", Icon: "🌳", Category: CategoryDiscovery, Description: "Hug a big tree"},
		{ID: "pinecone", Name: "Pine Collector", Icon: "🌲", Category: CategoryDiscovery, Description: "Collect a pinecone"},
		{ID: "rock", Name: "Rock Hound", Icon: "🪨", Category: CategoryDiscovery, Description: "Find a cool rock"},
		{ID: "feather", Name: "Feather Finder", Icon: "🪶", Category: CategoryDiscovery, Description: "Find a feather"},
		{ID: "stream", Name: "Stream Crosser", Icon: "🌊", Category: CategoryDiscovery, Description: "Cross a stream"},
		{ID: "cave", Name: "Cave Explorer", Icon: "🕳️", Category: CategoryDiscovery, Description: "Explore a cave"},
		{ID: "bridge", Name: "Bridge Walker", Icon: "🌉", Category: CategoryDiscovery, Description: "Cross a bridge"},
		{ID: "sunset", Name: "Sunset Chaser", Icon: "🌅", Category: CategoryDiscovery, Description: "Watch a sunset"},
		{ID: "sunrise", Name: "Early Bird", Icon: "🌄", Category: CategoryDiscovery, Description: "Watch a sunrise"},
		{ID: "rainbow", Name: "Rainbow Finder", Icon: "🌈", Category: CategoryDiscovery, Description: "See a rainbow"},
		{ID: "fog", Name: "Mist Walker", Icon: "🌫️", Category: CategoryDiscovery, Description: "Hike in fog"},
		{ID: "snow", Name: "Snow Trekker", Icon: "❄️", Category: CategoryDiscovery, Description: "Hike in snow"},
		{ID: "rain", Name: "Rain Ranger", Icon: "🌧️", Category: CategoryDiscovery, Description: "Hike in rain"},
		{ID: "frog", Name: "Frog Friend", Icon: "🐸", Category: CategoryDiscovery, Description: "See a frog"},
		{ID: "squirrel", Name: "Squirrel Scout", Icon: "🐿️", Category: CategoryDiscovery, Description: "Spot a squirrel"},
		{ID: "snake", Name: "Snake Spotter", Icon: "🐍", Category: CategoryDiscovery, Description: "See a snake"},
		{ID: "turtle", Name: "Turtle Tracker", Icon: "🐢", Category: CategoryDiscovery, Description: "Find a turtle"},
		{ID: "rabbit", Name: "Bunny Buddy", Icon: "🐰", Category: CategoryDiscovery, Description: "Spot a rabbit"},
		{ID: "fish", Name: "Fish Finder", Icon: "🐟", Category: CategoryDiscovery, Description: "See fish"},
		{ID: "acorn", Name: "Acorn Collector", Icon: "🌰", Category: CategoryDiscovery, Description: "Collect an acorn"},
		{ID: "leaf", Name: "Leaf Lover", Icon: "🍂", Category: CategoryDiscovery, Description: "Find a pretty leaf"},
		{ID: "stick", Name: "Walking Stick", Icon: "🦯", Category: CategoryDiscovery, Description: "Find a hiking stick"},
		{ID: "bee", Name: "Bee Keeper", Icon: "🐝", Category: CategoryDiscovery, Description: "See a bee"},
		{ID: "spider", Name: "Spider Scout", Icon: "🕷️", Category: CategoryDiscovery, Description: "Find a spider web"},
		{ID: "tracks", Name: "Track Finder", Icon: "🐾", Category: CategoryDiscovery, Description: "Find animal tracks"},
		{ID: "berries", Name: "Berry Scout", Icon: "🫐", Category: CategoryDiscovery, Description: "Find wild berries"},
		{ID: "nest", Name: "Nest Finder", Icon: "🪹", Category: CategoryDiscovery, Description: "Find a bird nest"},
		{ID: "fossil", Name: "Time Detective", Icon: "🦴", Category: CategoryDiscovery, Description: "Find a fossil"},
		{ID: "crystal", Name: "Crystal Hunter", Icon: "💎", Category: CategoryDiscovery, Description: "Find crystals"},
		{ID: "clouds", Name: "Cloud Watcher", Icon: "☁️", Category: CategoryDiscovery, Description: "Watch clouds"},
		{ID: "wind", Name: "Wind Rider", Icon: "💨", Category: CategoryDiscovery, Description: "Hike in wind"},
		{ID: "moon", Name: "Moon Gazer", Icon: "🌙", Category: CategoryDiscovery, Description: "See the moon"},
		{ID: "dragonfly", Name: "Dragon Spotter", Icon: "🪰", Category: CategoryDiscovery, Description: "See a dragonfly"},
		{ID: "ladybug", Name: "Lucky Bug", Icon: "🐞", Category: CategoryDiscovery, Description: "Find a ladybug"},
		{ID: "owl", Name: "Night Owl", Icon: "🦉", Category: CategoryDiscovery, Description: "Hear or see an owl"},
		{ID: "deer", Name: "Deer Whisperer", Icon: "🦌", Category: CategoryDiscovery, Description: "Get close to a deer"},
		{ID: "caterpillar", Name: "Caterpillar Hunter", Icon: "🐛", Category: CategoryDiscovery, Description: "Find a caterpillar"},

		// Location badges
		{ID: "beach", Name: "Beach Comber", Icon: "🏖️", Category: CategoryLocation, Description: "Hike at beach"},
		{ID: "desert", Name: "Desert Wanderer", Icon: "🏜️", Category: CategoryLocation, Description: "Hike in desert"},
		{ID: "forest", Name: "Forest Friend", Icon: "🌲", Category: CategoryLocation, Description: "Hike in forest"},
		{ID: "mountain", Name: "Mountain Master", Icon: "⛰️", Category: CategoryLocation, Description: "Hike mountains"},
		{ID: "canyon", Name: "Canyon Explorer", Icon: "🏞️", Category: CategoryLocation, Description: "Hike in canyon"},
		{ID: "lake", Name: "Lake Lover", Icon: "🏞️", Category: CategoryLocation, Description: "Hike around lake"},
		{ID: "river", Name: "River Runner", Icon: "🏞️", Category: CategoryLocation, Description: "Hike along river"},
		{ID: "statepark", Name: "Park Visitor", Icon: "🏕️", Category: CategoryLocation, Description: "Visit state park"},
		{ID: "nationalpark", Name: "Park Ranger", Icon: "🎖️", Category: CategoryLocation, Description: "Visit national park"},
		{ID: "meadow", Name: "Meadow Walker", Icon: "🌾", Category: CategoryLocation, Description: "Hike through meadow"},
		{ID: "wetland", Name: "Wetland Explorer", Icon: "🦆", Category: CategoryLocation, Description: "Visit wetland"},
		{ID: "jungle", Name: "Jungle Trekker", Icon: "🌴", Category: CategoryLocation, Description: "Hike in jungle"},
		{ID: "prairie", Name: "Prairie Walker", Icon: "🌻", Category: CategoryLocation, Description: "Hike prairie"},
		{ID: "tundra", Name: "Tundra Explorer", Icon: "🧊", Category: CategoryLocation, Description: "Hike in tundra"},
		{ID: "volcano", Name: "Volcano Adventurer", Icon: "🌋", Category: CategoryLocation, Description: "Hike near volcano"},
		{ID: "island", Name: "Island Explorer", Icon: "🏝️", Category: CategoryLocation, Description: "Hike on an island"},
		{ID: "swamp", Name: "Swamp Stomper", Icon: "🐊", Category: CategoryLocation, Description: "Explore a swamp"},

		// Special activity badges
		{ID: "picnic", Name: "Trail Feast", Icon: "🧺", Category: CategorySpecial, Description: "Have trail picnic"},
		{ID: "camping", Name: "Happy Camper", Icon: "⛺", Category: CategorySpecial, Description: "Camp overnight"},
		{ID: "stargazing", Name: "Star Gazer", Icon: "⭐", Category: CategorySpecial, Description: "Stargaze on trail"},
		{ID: "geocache", Name: "Treasure Hunter", Icon: "💎", Category: CategorySpecial, Description: "Find geocache"},
		{ID: "summit", Name: "Summit Seeker", Icon: "🎯", Category: CategorySpecial, Description: "Reach a summit"},
		{ID: "lighthouse", Name: "Light Keeper", Icon: "🗼", Category: CategorySpecial, Description: "Visit lighthouse"},
		{ID: "historic", Name: "Time Traveler", Icon: "🏛️", Category: CategorySpecial, Description: "Visit historic site"},
		{ID: "photog", Name: "Photo Pro", Icon: "📸", Category: CategorySpecial, Description: "Take photos"},
		{ID: "notrail", Name: "Off Beaten Path", Icon: "🧭", Category: CategorySpecial, Description: "Hike off-trail"},
		{ID: "map", Name: "Navigator", Icon: "🗺️", Category: CategorySpecial, Description: "Use map/compass"},
		{ID: "journal", Name: "Nature Writer", Icon: "📓", Category: CategorySpecial, Description: "Write in journal"},
		{ID: "art", Name: "Trail Artist", Icon: "🎨", Category: CategorySpecial, Description: "Draw/paint on trail"},
		{ID: "song", Name: "Trail Singer", Icon: "🎵", Category: CategorySpecial, Description: "Sing hiking songs"},
		{ID: "story", Name: "Story Teller", Icon: "📚", Category: CategorySpecial, Description: "Tell stories"},
		{ID: "game", Name: "Trail Games", Icon: "🎲", Category: CategorySpecial, Description: "Play trail games"},
		{ID: "clean", Name: "Trail Keeper", Icon: "♻️", Category: CategorySpecial, Description: "Pick up litter"},
		{ID: "courage", Name: "Brave Heart", Icon: "💪", Category: CategorySpecial, Description: "Overcome a fear"},
		{ID: "early", Name: "Morning Glory", Icon: "🌞", Category: CategorySpecial, Description: "Start before 7am"},
		{ID: "long", Name: "Endurance Pro", Icon: "⏱️", Category: CategorySpecial, Description: "Hike 4+ hours"},
		{ID: "quiet", Name: "Silent Steps", Icon: "🤫", Category: CategorySpecial, Description: "Hike in silence"},
		{ID: "backwards", Name: "Backwards Walker", Icon: "🔄", Category: CategorySpecial, Description: "Walk backwards"},
		{ID: "barefoot", Name: "Nature Feet", Icon: "🦶", Category: CategorySpecial, Description: "Walk barefoot"},
		{ID: "night", Name: "Night Hiker", Icon: "🌃", Category: CategorySpecial, Description: "Hike at night"},
		{ID: "firstaid", Name: "Trail Medic", Icon: "🩹", Category: CategorySpecial, Description: "Use first aid"},
		{ID: "fire", Name: "Fire Starter", Icon: "🔥", Category: CategorySpecial, Description: "Build safe fire"},
		{ID: "knots", Name: "Knot Master", Icon: "🪢", Category: CategorySpecial, Description: "Tie useful knots"},
		{ID: "binoculars", Name: "Far Seer", Icon: "🔭", Category: CategorySpecial, Description: "Use binoculars"},
		{ID: "whistle", Name: "Signal Master", Icon: "📣", Category: CategorySpecial, Description: "Use safety whistle"},
		{ID: "fishing", Name: "Trail Fisher", Icon: "🎣", Category: CategorySpecial, Description: "Fish on trail"},
		{ID: "wade", Name: "Water Walker", Icon: "👣", Category: CategorySpecial, Description: "Wade through water"},
		{ID: "climb", Name: "Rock Climber", Icon: "🧗‍♀️", Category: CategorySpecial, Description: "Climb rocks"},
		{ID: "meditation", Name: "Trail Zen", Icon: "🧘", Category: CategorySpecial, Description: "Meditate in nature"},
		{ID: "splash", Name: "Puddle Jumper", Icon: "💧", Category: CategorySpecial, Description: "Jump in puddles"},
		{ID: "skip", Name: "Stone Skipper", Icon: "🪨", Category: CategorySpecial, Description: "Skip stones on water"},
		{ID: "scavenger", Name: "Scavenger Pro", Icon: "🔍", Category: CategorySpecial, Description: "Complete a nature scavenger hunt"},
		// Hikes on a family birthday or under a full moon need a family's
		// say-so; no calendar rule can derive them, so they are claimed.
		{ID: "birthday", Name: "Birthday Trekker", Icon: "🎂", Category: CategorySpecial, Description: "Hike on your birthday"},
		{ID: "fullmoon", Name: "Full Moon Walker", Icon: "🌕", Category: CategorySpecial, Description: "Hike during a full moon"},

		// Social badges
		{ID: "family", Name: "Family Time", Icon: "👨‍👩‍👧‍👦", Category: CategorySocial, Description: "Family hikes together"},
		{ID: "leader", Name: "Trail Leader", Icon: "🧑‍🏫", Category: CategorySocial, Description: "Lead the group"},
		{ID: "help", Name: "Helpful Hiker", Icon: "🤝", Category: CategorySocial, Description: "Help another hiker"},

		// Streak badges
		{ID: "streak3", Name: "Getting Started", Icon: "🌱", Category: CategoryStreak, Requirement: 3, Description: "Hike 3 days in a row"},
		{ID: "streak7", Name: "Week Warrior", Icon: "📅", Category: CategoryStreak, Requirement: 7, Description: "Hike 7 days in a row"},
		{ID: "streak14", Name: "Fortnight Fighter", Icon: "💫", Category: CategoryStreak, Requirement: 14, Description: "Hike 14 days in a row"},
		{ID: "streak30", Name: "Monthly Master", Icon: "🌟", Category: CategoryStreak, Requirement: 30, Description: "Hike 30 days in a row"},
		{ID: "streak100", Name: "Streak Legend", Icon: "🏆", Category: CategoryStreak, Requirement: 100, Description: "Hike 100 days in a row"},

		// Holiday badges
		{ID: "newyear", Name: "New Year Trekker", Icon: "🎆", Category: CategoryHoliday, Holiday: HolidayNewYear, Description: "Hike on New Year's Day"},
		{ID: "earthday", Name: "Earth Defender", Icon: "🌍", Category: CategoryHoliday, Holiday: HolidayEarthDay, Description: "Hike on Earth Day (Apr 22)"},
		{ID: "nationalhike", Name: "National Hero", Icon: "🇺🇸", Category: CategoryHoliday, Holiday: HolidayNationalHiking, Description: "Hike on National Hiking Day"},
		{ID: "halloween", Name: "Spooky Hiker", Icon: "🎃", Category: CategoryHoliday, Holiday: HolidayHalloween, Description: "Hike on Halloween"},
		{ID: "thanksgiving", Name: "Grateful Hiker", Icon: "🦃", Category: CategoryHoliday, Holiday: HolidayThanksgiving, Description: "Hike on Thanksgiving"},
		{ID: "christmas", Name: "Holiday Hiker", Icon: "🎄", Category: CategoryHoliday, Holiday: HolidayChristmas, Description: "Hike on Christmas Day"},
	}
}
