// Package units converts between the imperial values stored on hikes and the
// family's preferred display system.
package units

import (
	"fmt"
	"math"
)

const (
	SystemImperial = "imperial"
	SystemMetric   = "metric"
)

const (
	kilometersPerMile = 1.609344
	metersPerFoot     = 0.3048
)

func MilesToKilometers(miles float64) float64 {
	return miles * kilometersPerMile
}

func KilometersToMiles(km float64) float64 {
	return km / kilometersPerMile
}

func FeetToMeters(feet float64) float64 {
	return feet * metersPerFoot
}

func MetersToFeet(meters float64) float64 {
	return meters / metersPerFoot
}

// FormatDistance renders a stored mileage in the family's display system.
func FormatDistance(miles float64, system string) string {
	if system == SystemMetric {
		return fmt.Sprintf("%.1f km", MilesToKilometers(miles))
	}
	return fmt.Sprintf("%.1f mi", miles)
}

// FormatElevation renders a stored elevation gain in the family's display
// system. Elevation is shown in whole units.
func FormatElevation(feet float64, system string) string {
	if system == SystemMetric {
		return fmt.Sprintf("%d m", int(math.Round(FeetToMeters(feet))))
	}
	return fmt.Sprintf("%d ft", int(math.Round(feet)))
}
