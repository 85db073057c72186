package badge

import "time"

// Season identifies a quarter of the hiking year. Boundaries are fixed
// calendar months, independent of hemisphere or locale.
type Season string

const (
	SeasonSpring Season = "spring" // Mar-May
	SeasonSummer Season = "summer" // Jun-Aug
	SeasonFall   Season = "fall"   // Sep-Nov
	SeasonWinter Season = "winter" // Dec-Feb

	// SeasonAll marks the definition satisfied only once hikes exist in all
	// four seasons.
	SeasonAll Season = "all"
)

// Valid reports whether the season key is recognized.
func (s Season) Valid() bool {
	switch s {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter, SeasonAll:
		return true
	}
	return false
}

// SeasonOf classifies a calendar date by month.
func SeasonOf(t time.Time) Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return SeasonSpring
	case time.June, time.July, time.August:
		return SeasonSummer
	case time.September, time.October, time.November:
		return SeasonFall
	default:
		return SeasonWinter
	}
}

// Holiday identifies an entry in the fixed holiday table.
type Holiday string

const (
	HolidayNewYear        Holiday = "newyear"      // Jan 1
	HolidayEarthDay       Holiday = "earthday"     // Apr 22
	HolidayMemorialDay    Holiday = "memorialday"  // last Monday in May
	HolidayLaborDay       Holiday = "laborday"     // first Monday in September
	HolidayHalloween      Holiday = "halloween"    // Oct 31
	HolidayNationalHiking Holiday = "nationalhike" // Nov 17
	HolidayThanksgiving   Holiday = "thanksgiving" // fourth Thursday in November
	HolidayChristmas      Holiday = "christmas"    // Dec 25
)

// Valid reports whether the holiday key is recognized.
func (h Holiday) Valid() bool {
	switch h {
	case HolidayNewYear, HolidayEarthDay, HolidayMemorialDay, HolidayLaborDay,
		HolidayHalloween, HolidayNationalHiking, HolidayThanksgiving, HolidayChristmas:
		return true
	}
	return false
}

// HolidayOf matches a calendar date against the holiday table. Floating
// holidays use time.Weekday (Sunday=0) arithmetic in the date's own location,
// matching the timezone assumption of hike dates.
func HolidayOf(t time.Time) (Holiday, bool) {
	month, day := t.Month(), t.Day()

	switch {
	case month == time.January && day == 1:
		return HolidayNewYear, true
	case month == time.April && day == 22:
		return HolidayEarthDay, true
	case month == time.October && day == 31:
		return HolidayHalloween, true
	case month == time.November && day == 17:
		return HolidayNationalHiking, true
	case month == time.December && day == 25:
		return HolidayChristmas, true
	}

	switch {
	case month == time.May && day == lastWeekday(t.Year(), time.May, time.Monday, t.Location()):
		return HolidayMemorialDay, true
	case month == time.September && day == nthWeekday(t.Year(), time.September, time.Monday, 1):
		return HolidayLaborDay, true
	case month == time.November && day == nthWeekday(t.Year(), time.November, time.Thursday, 4):
		return HolidayThanksgiving, true
	}

	return "", false
}

// nthWeekday returns the day-of-month of the nth occurrence of the weekday
// in the given month (n starts at 1).
func nthWeekday(year int, month time.Month, weekday time.Weekday, n int) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	return 1 + offset + (n-1)*7
}

// lastWeekday returns the day-of-month of the final occurrence of the weekday
// in the given month.
func lastWeekday(year int, month time.Month, weekday time.Weekday, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc) // day 0 of next month
	offset := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.Day() - offset
}
