package score

// SignalToNoise returns max(data)/mean(data), a coarse measure of how
// strongly a single peak dominates the series. Empty input and a zero
// mean both score 0.
func SignalToNoise(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	maxVal := data[0]
	var sum float64
	for _, v := range data {
		if v > maxVal {
			maxVal = v
		}
		sum += v
	}
	mean := sum / float64(len(data))
	if mean == 0 {
		return 0
	}

	return maxVal / mean
}

// Kurtosis returns the normalized fourth moment μ₄/σ⁴ of the series, a
// measure of peak sharpness. Empty and constant series score 0.
func Kurtosis(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}

	n := float64(len(data))
	var sum float64
	for _, v := range data {
		sum += v
	}
	mean := sum / n

	var variance, fourth float64
	for _, v := range data {
		d := v - mean
		variance += d * d
		fourth += d * d * d * d
	}
	variance /= n
	fourth /= n
	if variance == 0 {
		return 0
	}

	return fourth / (variance * variance)
}
