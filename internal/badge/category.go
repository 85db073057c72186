package badge

// Category groups badge definitions by how they are evaluated and displayed.
type Category string

const (
	CategoryCount     Category = "count"
	CategoryDistance  Category = "distance"
	CategoryElevation Category = "elevation"
	CategorySeasonal  Category = "seasonal"
	CategoryStreak    Category = "streak"
	CategoryHoliday   Category = "holiday"
	CategoryWeather   Category = "weather"
	CategoryDiscovery Category = "discovery"
	CategoryLocation  Category = "location"
	CategorySpecial   Category = "special"
	CategorySocial    Category = "social"
)

// Manual reports whether badges in this category require an explicit user
// claim. Manual badges describe facts the system cannot observe from hike
// records alone, so they never auto-qualify during evaluation.
func (c Category) Manual() bool {
	switch c {
	case CategoryCount, CategoryDistance, CategoryElevation, CategorySeasonal, CategoryStreak, CategoryHoliday:
		return false
	case CategoryWeather, CategoryDiscovery, CategoryLocation, CategorySpecial, CategorySocial:
		return true
	}
	return false
}

// Valid reports whether the category is one of the known evaluation groups.
func (c Category) Valid() bool {
	switch c {
	case CategoryCount, CategoryDistance, CategoryElevation, CategorySeasonal, CategoryStreak,
		CategoryHoliday, CategoryWeather, CategoryDiscovery, CategoryLocation, CategorySpecial, CategorySocial:
		return true
	}
	return false
}

// CategoryInfo carries display metadata for a badge category.
type CategoryInfo struct {
	ID    Category `json:"id"`
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Color string   `json:"color"`
}

// Categories returns display metadata for every category, in presentation order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{ID: CategoryCount, Name: "Hike Milestones", Icon: "🥾", Color: "#5a7159"},
		{ID: CategoryDistance, Name: "Distance Goals", Icon: "🏃", Color: "#748da6"},
		{ID: CategoryElevation, Name: "Elevation Climbs", Icon: "⛰️", Color: "#8b6f47"},
		{ID: CategorySeasonal, Name: "Seasonal", Icon: "🌸", Color: "#9b8fa6"},
		{ID: CategoryWeather, Name: "Weather Warriors", Icon: "🌧️", Color: "#6b8fa6"},
		{ID: CategoryDiscovery, Name: "Nature Discovery", Icon: "🔍", Color: "#6b8e6b"},
		{ID: CategoryLocation, Name: "Locations", Icon: "📍", Color: "#b8835a"},
		{ID: CategorySpecial, Name: "Special Activities", Icon: "⭐", Color: "#d4a574"},
		{ID: CategorySocial, Name: "Together on the Trail", Icon: "🤝", Color: "#a65959"},
		{ID: CategoryStreak, Name: "Hiking Streaks", Icon: "🔥", Color: "#a65959"},
		{ID: CategoryHoliday, Name: "Holiday Hikes", Icon: "🎉", Color: "#d4a574"},
	}
}
