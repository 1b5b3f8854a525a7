package vars

// FirstNonZero returns the first value that is not the zero value,
// for layering explicit settings over defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
