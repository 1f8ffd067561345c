package core

// LogicHigh is the voltage of an active gate or trigger output.
const LogicHigh = 10.0

// GateVoltage maps a logic level onto the 0/10 V convention.
func GateVoltage(high bool) float64 {
	if high {
		return LogicHigh
	}

	return 0
}

// Above reports whether v is strictly above threshold.
func Above(v, threshold float64) bool { return v > threshold }

// Below reports whether v is strictly below threshold.
func Below(v, threshold float64) bool { return v < threshold }

// SwitchOn maps a two-position switch value to a bool using the 0.5 midpoint.
func SwitchOn(value float64) bool { return value > 0.5 }
