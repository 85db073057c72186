package badge

import (
	"testing"
	"time"
)

func TestXPForHike(t *testing.T) {
	tests := []struct {
		name string
		hike Hike
		want int
	}{
		{"base only", Hike{Date: date(2026, time.May, 1)}, 100},
		{"distance and elevation", Hike{Distance: 3.5, ElevationGain: 400}, 155}, // 100 + 35 + 20
		{"fractional miles floor", Hike{Distance: 0.19}, 101},                    // floor(1.9) = 1
		{"fractional elevation floor", Hike{ElevationGain: 150}, 107},            // floor(7.5) = 7
		{"negative values ignored", Hike{Distance: -2, ElevationGain: -50}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := XPForHike(tt.hike); got != tt.want {
				t.Fatalf("XPForHike = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLevelForZero(t *testing.T) {
	got := LevelFor(0)
	if got.Level != 1 || got.MinXP != 0 {
		t.Fatalf("LevelFor(0) = %+v, want level 1", got)
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := LevelFor(0).Level
	for xp := 0; xp <= 20000; xp += 50 {
		cur := LevelFor(xp).Level
		if cur < prev {
			t.Fatalf("level decreased from %d to %d at %d XP", prev, cur, xp)
		}
		prev = cur
	}
}

func TestLevelForThresholdCrossing(t *testing.T) {
	ladder := Levels()
	for _, l := range ladder[1:] {
		if got := LevelFor(l.MinXP - 1); got.Level >= l.Level {
			t.Fatalf("LevelFor(%d) = %d, want below %d", l.MinXP-1, got.Level, l.Level)
		}
		if got := LevelFor(l.MinXP); got.Level != l.Level {
			t.Fatalf("LevelFor(%d) = %d, want %d", l.MinXP, got.Level, l.Level)
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	ladder := Levels()

	need, ok := XPToNextLevel(0)
	if !ok || need != ladder[1].MinXP {
		t.Fatalf("XPToNextLevel(0) = %d, %v; want %d", need, ok, ladder[1].MinXP)
	}

	top := ladder[len(ladder)-1]
	if _, ok := XPToNextLevel(top.MinXP); ok {
		t.Fatal("expected no next level at the top tier")
	}
}
