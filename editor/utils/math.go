package utils

// SaturatingSub returns a-b, but never less than zero.
func SaturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}

// SaturatingAdd returns a+b capped at limit.
func SaturatingAdd(a, b, limit int) int {
	if a >= limit || b >= limit-a {
		return limit
	}
	return a + b
}

// Clamp bounds v to [lo, hi]. hi wins when lo > hi.
func Clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo && lo <= hi {
		v = lo
	}
	return v
}
