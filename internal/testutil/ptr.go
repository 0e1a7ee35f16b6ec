package testutil

import "time"

func Ptr[T any](v T) *T {
	return &v
}

// At returns a UTC timestamp truncated to microseconds, the precision postgres keeps.
func At(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
