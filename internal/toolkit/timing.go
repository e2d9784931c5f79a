package toolkit

import "time"

// Timed runs fn and returns its result together with the wall-clock duration.
func Timed[T any](fn func() T) (T, time.Duration) {
	start := time.Now()
	result := fn()
	return result, time.Since(start)
}

// TimedErr runs fn and returns its result and wall-clock duration.
// The duration is valid even when fn fails.
func TimedErr[T any](fn func() (T, error)) (T, time.Duration, error) {
	start := time.Now()
	result, err := fn()
	return result, time.Since(start), err
}
