package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen[F Float](buf []F, n int) []F {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]F, n)
}

// Widen copies src into dst converting to float64 and returns the number
// of copied elements.
func Widen[F Float](dst []float64, src []F) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float64(src[i])
	}
	return n
}
