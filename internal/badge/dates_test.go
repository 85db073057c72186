package badge

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSeasonOf(t *testing.T) {
	tests := []struct {
		in   time.Time
		want Season
	}{
		{date(2026, time.March, 1), SeasonSpring},
		{date(2026, time.May, 31), SeasonSpring},
		{date(2026, time.June, 1), SeasonSummer},
		{date(2026, time.August, 15), SeasonSummer},
		{date(2026, time.September, 1), SeasonFall},
		{date(2026, time.November, 30), SeasonFall},
		{date(2026, time.December, 1), SeasonWinter},
		{date(2026, time.February, 28), SeasonWinter},
	}
	for _, tt := range tests {
		if got := SeasonOf(tt.in); got != tt.want {
			t.Fatalf("SeasonOf(%s) = %s, want %s", tt.in.Format(dayLayout), got, tt.want)
		}
	}
}

func TestHolidayOfFixedDates(t *testing.T) {
	tests := []struct {
		in   time.Time
		want Holiday
	}{
		{date(2026, time.January, 1), HolidayNewYear},
		{date(2026, time.April, 22), HolidayEarthDay},
		{date(2026, time.October, 31), HolidayHalloween},
		{date(2026, time.November, 17), HolidayNationalHiking},
		{date(2026, time.December, 25), HolidayChristmas},
	}
	for _, tt := range tests {
		got, ok := HolidayOf(tt.in)
		if !ok || got != tt.want {
			t.Fatalf("HolidayOf(%s) = %q, %v; want %s", tt.in.Format(dayLayout), got, ok, tt.want)
		}
	}
}

func TestHolidayOfFloatingDates(t *testing.T) {
	tests := []struct {
		in   time.Time
		want Holiday
	}{
		// Fourth Thursday in November
		{date(2024, time.November, 28), HolidayThanksgiving},
		{date(2025, time.November, 27), HolidayThanksgiving},
		{date(2026, time.November, 26), HolidayThanksgiving},
		// Last Monday in May
		{date(2025, time.May, 26), HolidayMemorialDay},
		{date(2026, time.May, 25), HolidayMemorialDay},
		// First Monday in September
		{date(2025, time.September, 1), HolidayLaborDay},
		{date(2026, time.September, 7), HolidayLaborDay},
	}
	for _, tt := range tests {
		got, ok := HolidayOf(tt.in)
		if !ok || got != tt.want {
			t.Fatalf("HolidayOf(%s) = %q, %v; want %s", tt.in.Format(dayLayout), got, ok, tt.want)
		}
	}
}

func TestHolidayOfOrdinaryDays(t *testing.T) {
	ordinary := []time.Time{
		date(2026, time.March, 14),
		date(2026, time.November, 25), // Wednesday before Thanksgiving
		date(2026, time.May, 18),      // a Monday, but not the last one
	}
	for _, in := range ordinary {
		if got, ok := HolidayOf(in); ok {
			t.Fatalf("HolidayOf(%s) unexpectedly matched %s", in.Format(dayLayout), got)
		}
	}
}
