package analytics

// Attainment status colors used by the dashboard gauges.
const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// Project extrapolates partial-period revenue to a full-period estimate by
// the ratio of total to elapsed working days. Zero elapsed days means the
// period has not started; the projection is 0, never a division fault.
func Project(revenue float64, elapsedDays, totalDays int) float64 {
	if elapsedDays <= 0 {
		return 0
	}
	return revenue / float64(elapsedDays) * float64(totalDays)
}

// Attainment is value over target as a percentage. A missing or zero
// target yields 0 rather than an undefined ratio. The result is not
// capped; display coloring is StatusColor's concern.
func Attainment(value, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return value / target * 100
}

// StatusColor maps an attainment percentage to its gauge color:
// green at or above 100%, yellow at or above 70%, red below.
func StatusColor(pct float64) string {
	switch {
	case pct >= 100:
		return StatusGreen
	case pct >= 70:
		return StatusYellow
	default:
		return StatusRed
	}
}
