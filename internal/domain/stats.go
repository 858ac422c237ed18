package domain

// Extremum is a minimum or maximum together with the row it came from.
type Extremum struct {
	Value float64
	Index int
}

// Mean returns the arithmetic mean of values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values)), nil
}

// FindMin returns the smallest value and the last index holding it.
// ok is false when values is empty.
func FindMin(values []float64) (Extremum, bool) {
	return findExtremum(values, func(v, best float64) bool { return v < best })
}

// FindMax returns the largest value and the last index holding it.
// ok is false when values is empty.
func FindMax(values []float64) (Extremum, bool) {
	return findExtremum(values, func(v, best float64) bool { return v > best })
}

func findExtremum(values []float64, better func(v, best float64) bool) (Extremum, bool) {
	if len(values) == 0 {
		return Extremum{}, false
	}
	best := Extremum{Value: values[0], Index: 0}
	for i, v := range values {
		// Equal values move the index forward: the last occurrence wins.
		if better(v, best.Value) || v == best.Value {
			best = Extremum{Value: v, Index: i}
		}
	}
	return best, true
}
