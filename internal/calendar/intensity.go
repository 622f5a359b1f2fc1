// ABOUTME: Heat-map intensity tiers for per-day record counts.
// ABOUTME: Counts map to none, low, medium, high, or max.
package calendar

// Intensity is one of five fixed heat-map tiers.
type Intensity int

const (
	None Intensity = iota
	Low
	Medium
	High
	Max
)

var intensityNames = [...]string{"none", "low", "medium", "high", "max"}

func (i Intensity) String() string {
	if i < None || i > Max {
		return "unknown"
	}
	return intensityNames[i]
}

// MarshalText renders the tier name.
func (i Intensity) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// IntensityFor maps a day's record count to its tier:
// 0 none, 1-3 low, 4-6 medium, 7-9 high, 10+ max.
func IntensityFor(count int) Intensity {
	switch {
	case count <= 0:
		return None
	case count <= 3:
		return Low
	case count <= 6:
		return Medium
	case count <= 9:
		return High
	default:
		return Max
	}
}
