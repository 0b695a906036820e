package sanitizer

// Deduplicate drops repeated values in place, keeping the first occurrence
// of each. The returned slice shares the backing array of values.
func Deduplicate[T comparable](values []T) []T {
	if len(values) < 2 {
		return values
	}
	seen := make(map[T]struct{}, len(values))
	n := 0
	for _, v := range values {
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values[n] = v
		n++
	}
	clear(values[n:])
	return values[:n]
}
