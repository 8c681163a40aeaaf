package core

// Interval is a half-open distance range [Min, Max), used to filter
// ray-surface intersections.
type Interval struct {
	Min, Max float64
}

// NewInterval creates a new Interval
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Contains reports whether a value falls inside the interval. NaN is
// never contained.
func (i Interval) Contains(value float64) bool {
	return i.Min <= value && value < i.Max
}
