package domain

// Coalesce returns the first non-zero value from vals. Request fields use
// the zero value to mean "use the configured default".
func Coalesce[T comparable](vals ...T) T {
	var zero T
	for _, v := range vals {
		if v != zero {
			return v
		}
	}
	return zero
}
