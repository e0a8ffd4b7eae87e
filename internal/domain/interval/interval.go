// Package interval holds the overlap and containment predicates used by the
// scheduling rules. Intervals are half-open: [start, end).
package interval

// Point is any instant that can be ordered, such as time.Time or
// clock.TimeOfDay.
type Point[T any] interface {
	Before(T) bool
}

// Overlaps reports whether [s1, e1) and [s2, e2) share at least one instant.
// Touching intervals (e1 == s2) do not overlap.
func Overlaps[T Point[T]](s1, e1, s2, e2 T) bool {
	return s1.Before(e2) && s2.Before(e1)
}

// Contains reports whether [s, e) lies entirely inside [blockStart, blockEnd).
func Contains[T Point[T]](blockStart, blockEnd, s, e T) bool {
	return !s.Before(blockStart) && !blockEnd.Before(e)
}
