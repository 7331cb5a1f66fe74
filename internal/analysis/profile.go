package analysis

import "solar-sizing/internal/model"

// ProfileStats summarizes an hourly load profile.
type ProfileStats struct {
	PeakW    float64 `json:"peak_w"`
	PeakHour int     `json:"peak_hour"`
	AverageW float64 `json:"average_w"`
}

// ComputeProfileStats returns the peak draw (with its hour) and the mean
// draw of a 24-slot profile. Ties on the peak keep the earliest hour.
func ComputeProfileStats(profile [model.HoursPerDay]float64) ProfileStats {
	var stats ProfileStats
	sum := 0.0
	for h, w := range profile {
		sum += w
		if w > stats.PeakW {
			stats.PeakW = w
			stats.PeakHour = h
		}
	}
	stats.AverageW = sum / model.HoursPerDay
	return stats
}
