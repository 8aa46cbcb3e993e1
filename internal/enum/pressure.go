package enum

// PressureTrend is the direction barometric pressure is moving.
type PressureTrend string

const (
	PressureRising  PressureTrend = "rising"
	PressureFalling PressureTrend = "falling"
	PressureSteady  PressureTrend = "steady"
)

var PressureTrends = newSet("pressure trend", PressureRising, PressureFalling, PressureSteady)

func (p PressureTrend) Description() string {
	switch p {
	case PressureRising:
		return "The sea level air pressure is increasing"
	case PressureFalling:
		return "The sea level air pressure is decreasing"
	case PressureSteady:
		return "The sea level air pressure is remaining about the same"
	}
	return ""
}

// Arrow returns ↑, ↓ or →.
func (p PressureTrend) Arrow() string {
	switch p {
	case PressureRising:
		return "↑"
	case PressureFalling:
		return "↓"
	case PressureSteady:
		return "→"
	}
	return ""
}

func (p PressureTrend) String() string { return string(p) }
