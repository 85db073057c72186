package badge

import (
	"testing"
	"time"
)

func mustCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func containsID(defs []Definition, id string) bool {
	for _, d := range defs {
		if d.ID == id {
			return true
		}
	}
	return false
}

func TestEvaluateEmptyHistory(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)

	if got := c.Evaluate(nil, map[string]bool{}, today); len(got) != 0 {
		t.Fatalf("expected no badges for empty history, got %d", len(got))
	}
	if got := CurrentStreak(nil, today); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestEvaluateFirstHike(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)
	hikes := []Hike{{Date: today, Distance: 3.5, ElevationGain: 400}}

	got := c.Evaluate(hikes, map[string]bool{}, today)
	if !containsID(got, "first") {
		t.Fatalf("expected first-hike badge, got %+v", got)
	}
	// August counts toward the summer seasonal badge on the same pass.
	if !containsID(got, "summer") {
		t.Fatalf("expected summer badge, got %+v", got)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: date(2026, time.August, 26), Distance: 6},
		{Date: date(2026, time.August, 27), Distance: 5},
		{Date: date(2026, time.August, 28), Distance: 4},
	}
	earned := map[string]bool{}

	first := c.Evaluate(hikes, earned, today)
	if len(first) == 0 {
		t.Fatal("expected some badges on first evaluation")
	}

	again := c.Evaluate(hikes, earned, today)
	if len(again) != len(first) {
		t.Fatalf("same inputs produced %d then %d badges", len(first), len(again))
	}

	for _, def := range first {
		earned[def.ID] = true
	}
	if got := c.Evaluate(hikes, earned, today); len(got) != 0 {
		t.Fatalf("expected empty result after folding earned set, got %+v", got)
	}
}

func TestEvaluateOutputIsCatalogOrdered(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: date(2026, time.August, 27), Distance: 12, ElevationGain: 1500},
		{Date: today, Distance: 2},
	}

	got := c.Evaluate(hikes, map[string]bool{}, today)
	order := make(map[string]int, c.Len())
	for i, def := range c.All() {
		order[def.ID] = i
	}
	for i := 1; i < len(got); i++ {
		if order[got[i-1].ID] > order[got[i].ID] {
			t.Fatalf("output not in catalog order: %s before %s", got[i-1].ID, got[i].ID)
		}
	}
}

func TestEvaluateStreakBadge(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: date(2026, time.August, 26)},
		{Date: date(2026, time.August, 27)},
		{Date: today},
	}

	if got := CurrentStreak(hikes, today); got != 3 {
		t.Fatalf("CurrentStreak = %d, want 3", got)
	}
	got := c.Evaluate(hikes, map[string]bool{}, today)
	if !containsID(got, "streak3") {
		t.Fatalf("expected streak3 badge, got %+v", got)
	}
	if containsID(got, "streak7") {
		t.Fatal("streak7 should not qualify at 3 days")
	}
}

func TestCurrentStreakDeduplicatesSameDay(t *testing.T) {
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: today},
		{Date: today},
		{Date: today.Add(10 * time.Hour)},
		{Date: date(2026, time.August, 27)},
	}
	if got := CurrentStreak(hikes, today); got != 2 {
		t.Fatalf("CurrentStreak = %d, want 2 (same-day hikes count once)", got)
	}
}

func TestCurrentStreakBreaksOnGap(t *testing.T) {
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: today},
		{Date: date(2026, time.August, 26)}, // gap on the 27th
		{Date: date(2026, time.August, 25)},
	}
	if got := CurrentStreak(hikes, today); got != 1 {
		t.Fatalf("CurrentStreak = %d, want 1", got)
	}
}

func TestCurrentStreakZeroWithoutHikeToday(t *testing.T) {
	today := date(2026, time.August, 28)
	hikes := []Hike{{Date: date(2026, time.August, 27)}}
	if got := CurrentStreak(hikes, today); got != 0 {
		t.Fatalf("CurrentStreak = %d, want 0", got)
	}
}

func TestEvaluateChristmasHike(t *testing.T) {
	c := mustCatalog(t)
	today := date(2025, time.December, 26)
	hikes := []Hike{{Date: date(2025, time.December, 25), Distance: 1}}

	got := c.Evaluate(hikes, map[string]bool{}, today)
	if !containsID(got, "christmas") {
		t.Fatalf("expected christmas badge, got %+v", got)
	}

	got = c.Evaluate(hikes, map[string]bool{"christmas": true}, today)
	if containsID(got, "christmas") {
		t.Fatal("christmas badge should not be re-earned")
	}
}

func TestEvaluateFourSeasons(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.December, 5)
	threeSeasons := []Hike{
		{Date: date(2026, time.April, 1)},
		{Date: date(2026, time.July, 1)},
		{Date: date(2026, time.October, 1)},
	}

	got := c.Evaluate(threeSeasons, map[string]bool{}, today)
	if containsID(got, "fourseasons") {
		t.Fatal("fourseasons should need all four seasons")
	}

	allFour := append(threeSeasons, Hike{Date: date(2026, time.December, 4)})
	got = c.Evaluate(allFour, map[string]bool{}, today)
	if !containsID(got, "fourseasons") {
		t.Fatalf("expected fourseasons badge, got %+v", got)
	}
}

func TestEvaluateNeverReturnsManualBadges(t *testing.T) {
	c := mustCatalog(t)
	today := date(2026, time.August, 28)
	hikes := make([]Hike, 0, 120)
	day := date(2026, time.January, 2)
	for i := 0; i < 120; i++ {
		hikes = append(hikes, Hike{Date: day, Distance: 10, ElevationGain: 1000})
		day = day.AddDate(0, 0, 2)
	}

	for _, def := range c.Evaluate(hikes, map[string]bool{}, today) {
		if def.Category.Manual() {
			t.Fatalf("manual badge %s returned by Evaluate", def.ID)
		}
	}
}

func TestComputeStatsSkipsInvalidRecords(t *testing.T) {
	today := date(2026, time.August, 28)
	hikes := []Hike{
		{Date: today, Distance: 3, ElevationGain: 300},
		{},                                 // zero date: skipped entirely
		{Date: today, Distance: -5},        // negative distance excluded from the sum
		{Date: today, ElevationGain: -100}, // negative elevation excluded
	}

	stats := ComputeStats(hikes, today)
	if stats.TotalHikes != 3 {
		t.Fatalf("TotalHikes = %d, want 3", stats.TotalHikes)
	}
	if stats.TotalMiles != 3 {
		t.Fatalf("TotalMiles = %v, want 3", stats.TotalMiles)
	}
	if stats.TotalFeet != 300 {
		t.Fatalf("TotalFeet = %v, want 300", stats.TotalFeet)
	}
}

func TestClaimRules(t *testing.T) {
	c := mustCatalog(t)

	if _, err := c.Claim("no-such-badge", map[string]bool{}); err != ErrBadgeNotFound {
		t.Fatalf("expected ErrBadgeNotFound, got %v", err)
	}
	if _, err := c.Claim("explorer", map[string]bool{}); err != ErrNotClaimable {
		t.Fatalf("expected ErrNotClaimable for count badge, got %v", err)
	}
	if _, err := c.Claim("waterfall", map[string]bool{"waterfall": true}); err != ErrAlreadyEarned {
		t.Fatalf("expected ErrAlreadyEarned, got %v", err)
	}

	def, err := c.Claim("waterfall", map[string]bool{})
	if err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if def.ID != "waterfall" || !def.Category.Manual() {
		t.Fatalf("unexpected claim result: %+v", def)
	}
}
