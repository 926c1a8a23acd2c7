package stats

import "fmt"

// ProgressFraction returns value as a percentage of max[index].
// Results above 100 are valid (a card above the recorded maximum) and are not clamped.
func ProgressFraction(index int, value int, max StatVector) (float64, error) {
	if index < 0 || index >= len(max) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidStatIndex, index)
	}
	if max[index] == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDivisionByZero, Attributes[index])
	}
	return 100 * float64(value) / float64(max[index]), nil
}

// Progress is ProgressFraction keyed by attribute.
func Progress(a Attribute, value int, max StatVector) (float64, error) {
	return ProgressFraction(a.Index(), value, max)
}

// Bars computes the percentage for every channel of v.
func Bars(v, max StatVector) ([3]float64, error) {
	var out [3]float64
	for i := range v {
		p, err := ProgressFraction(i, v[i], max)
		if err != nil {
			return [3]float64{}, err
		}
		out[i] = p
	}
	return out, nil
}
