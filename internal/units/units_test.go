package units

import (
	"math"
	"testing"
)

func TestConversionsRoundTrip(t *testing.T) {
	for _, miles := range []float64{0, 0.1, 3.5, 26.2, 100} {
		back := KilometersToMiles(MilesToKilometers(miles))
		if math.Abs(back-miles) > 1e-9 {
			t.Errorf("miles round trip: %v -> %v", miles, back)
		}
	}
	for _, feet := range []float64{0, 400, 5280, 14000} {
		back := MetersToFeet(FeetToMeters(feet))
		if math.Abs(back-feet) > 1e-9 {
			t.Errorf("feet round trip: %v -> %v", feet, back)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	tests := []struct {
		miles  float64
		system string
		want   string
	}{
		{3.5, SystemImperial, "3.5 mi"},
		{3.5, SystemMetric, "5.6 km"},
		{0, SystemImperial, "0.0 mi"},
		{1, "", "1.0 mi"}, // unknown systems fall back to imperial
	}
	for _, tt := range tests {
		if got := FormatDistance(tt.miles, tt.system); got != tt.want {
			t.Errorf("FormatDistance(%v, %q) = %q, want %q", tt.miles, tt.system, got, tt.want)
		}
	}
}

func TestFormatElevation(t *testing.T) {
	tests := []struct {
		feet   float64
		system string
		want   string
	}{
		{400, SystemImperial, "400 ft"},
		{400, SystemMetric, "122 m"},
		{1000, SystemMetric, "305 m"},
	}
	for _, tt := range tests {
		if got := FormatElevation(tt.feet, tt.system); got != tt.want {
			t.Errorf("FormatElevation(%v, %q) = %q, want %q", tt.feet, tt.system, got, tt.want)
		}
	}
}
