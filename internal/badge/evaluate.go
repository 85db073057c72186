package badge

import "time"

const dayLayout = "2006-01-02"

// Hike is the evaluator's view of one logged outing. Distance is in miles
// and ElevationGain in feet; negative values are treated as absent.
type Hike struct {
	Date          time.Time
	Distance      float64
	ElevationGain float64
}

// Stats aggregates a family's hike history for threshold checks.
type Stats struct {
	TotalHikes     int     `json:"total_hikes"`
	TotalMiles     float64 `json:"total_miles"`
	TotalFeet      float64 `json:"total_feet"`
	CurrentStreak  int     `json:"current_streak"`
	SeasonsVisited int     `json:"seasons_visited"`

	seasons  map[Season]bool
	holidays map[Holiday]bool
}

// HasSeason reports whether at least one hike fell in the given season.
func (s Stats) HasSeason(season Season) bool {
	if season == SeasonAll {
		return len(s.seasons) == 4
	}
	return s.seasons[season]
}

// HasHoliday reports whether at least one hike fell on the given holiday.
func (s Stats) HasHoliday(holiday Holiday) bool {
	return s.holidays[holiday]
}

// ComputeStats folds the hike history into aggregate statistics as of today.
// Records with a zero date are skipped entirely; negative distance or
// elevation values are excluded from their sums but the hike still counts.
// Historical data may predate stricter entry validation, so bad records
// degrade the aggregates instead of failing the evaluation.
func ComputeStats(hikes []Hike, today time.Time) Stats {
	stats := Stats{
		seasons:  make(map[Season]bool),
		holidays: make(map[Holiday]bool),
	}

	for _, h := range hikes {
		if h.Date.IsZero() {
			continue
		}

		stats.TotalHikes++
		if h.Distance > 0 {
			stats.TotalMiles += h.Distance
		}
		if h.ElevationGain > 0 {
			stats.TotalFeet += h.ElevationGain
		}

		stats.seasons[SeasonOf(h.Date)] = true
		if holiday, ok := HolidayOf(h.Date); ok {
			stats.holidays[holiday] = true
		}
	}

	stats.SeasonsVisited = len(stats.seasons)
	stats.CurrentStreak = CurrentStreak(hikes, today)
	return stats
}

// CurrentStreak counts consecutive distinct calendar days with at least one
// hike, ending today. Multiple hikes on the same day count once. A day
// without hikes breaks the streak; no hikes today means streak 0.
func CurrentStreak(hikes []Hike, today time.Time) int {
	days := make(map[string]bool, len(hikes))
	for _, h := range hikes {
		if h.Date.IsZero() {
			continue
		}
		days[h.Date.Format(dayLayout)] = true
	}
	if len(days) == 0 {
		return 0
	}

	streak := 0
	cursor := truncateToDay(today)
	for days[cursor.Format(dayLayout)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
	return streak
}

// Evaluate returns the automatic-category definitions newly satisfied by the
// hike history, in catalog order. Definitions whose IDs appear in earned are
// skipped, so folding the result back into earned makes a second call return
// nothing. Manual categories never appear in the output.
func (c *Catalog) Evaluate(hikes []Hike, earned map[string]bool, today time.Time) []Definition {
	stats := ComputeStats(hikes, today)
	return c.EvaluateStats(stats, earned)
}

// EvaluateStats is Evaluate for callers that already computed aggregates.
func (c *Catalog) EvaluateStats(stats Stats, earned map[string]bool) []Definition {
	var newly []Definition
	for _, def := range c.defs {
		if earned[def.ID] || !c.qualifies(def, stats) {
			continue
		}
		newly = append(newly, def)
	}
	return newly
}

func (c *Catalog) qualifies(def Definition, stats Stats) bool {
	switch def.Category {
	case CategoryCount:
		return float64(stats.TotalHikes) >= def.Requirement
	case CategoryDistance:
		return stats.TotalMiles >= def.Requirement
	case CategoryElevation:
		return stats.TotalFeet >= def.Requirement
	case CategoryStreak:
		return float64(stats.CurrentStreak) >= def.Requirement
	case CategorySeasonal:
		return stats.HasSeason(def.Season)
	case CategoryHoliday:
		return stats.HasHoliday(def.Holiday)
	}
	return false
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
