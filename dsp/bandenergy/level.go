package bandenergy

// EnergyLevel quantizes a band fraction into discrete display levels 1..5
// over 0.2-wide steps. Values outside [0, 1], including NaN, map to 0.
func EnergyLevel(frac float64) float64 {
	switch {
	case frac >= 0 && frac <= 0.2:
		return 1
	case frac > 0.2 && frac <= 0.4:
		return 2
	case frac > 0.4 && frac <= 0.6:
		return 3
	case frac > 0.6 && frac <= 0.8:
		return 4
	case frac > 0.8 && frac <= 1.0:
		return 5
	}

	return 0
}
