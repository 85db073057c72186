package badge

import "math"

// Experience awards. Distance and elevation bonuses are floored to whole
// points before being added to the base award.
const (
	XPPerHike    = 100 // base award for logging any hike
	XPPerMile    = 10
	XPPer100Feet = 5
	XPPerBadge   = 25 // awarded per earned badge only when the toggle is on
)

// Level is one tier of the progression ladder.
type Level struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	MinXP int    `json:"min_xp"`
}

// levels is the fixed ascending ladder. The first tier must start at 0 so
// LevelFor is total on non-negative XP.
var levels = []Level{
	{Level: 1, Name: "Fresh Boots", MinXP: 0},
	{Level: 2, Name: "Trail Scouts", MinXP: 250},
	{Level: 3, Name: "Pathfinders", MinXP: 600},
	{Level: 4, Name: "Ridge Runners", MinXP: 1200},
	{Level: 5, Name: "Peak Seekers", MinXP: 2200},
	{Level: 6, Name: "Summit Family", MinXP: 3800},
	{Level: 7, Name: "Wilderness Legends", MinXP: 6000},
	{Level: 8, Name: "Mountain Dynasty", MinXP: 9000},
	{Level: 9, Name: "Trail Royalty", MinXP: 13000},
	{Level: 10, Name: "Everest Spirits", MinXP: 18000},
}

// Levels returns the full ladder in ascending order. The slice is a copy.
func Levels() []Level {
	out := make([]Level, len(levels))
	copy(out, levels)
	return out
}

// XPForHike computes the experience earned by logging one hike.
func XPForHike(h Hike) int {
	xp := XPPerHike
	if h.Distance > 0 {
		xp += int(math.Floor(h.Distance * XPPerMile))
	}
	if h.ElevationGain > 0 {
		xp += int(math.Floor(h.ElevationGain / 100 * XPPer100Feet))
	}
	return xp
}

// LevelFor returns the highest tier whose threshold is at or below totalXP.
func LevelFor(totalXP int) Level {
	current := levels[0]
	for _, l := range levels {
		if totalXP < l.MinXP {
			break
		}
		current = l
	}
	return current
}

// XPToNextLevel returns the experience still needed to reach the next tier,
// or false when totalXP is already at the maximum tier.
func XPToNextLevel(totalXP int) (int, bool) {
	for _, l := range levels {
		if totalXP < l.MinXP {
			return l.MinXP - totalXP, true
		}
	}
	return 0, false
}
