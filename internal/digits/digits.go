// Package digits converts candidate document strings into decimal digit values.
package digits

// Strict collects ASCII digit values from s, stopping at the first byte that
// is not a digit. Callers compare the returned length against the expected
// document length to detect foreign characters in unformatted input.
//
// Example:
//
//	Strict("272676S6021")
//	// Returns: []int{2, 7, 2, 6, 7, 6}
func Strict(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < '0' || b > '9' {
			break
		}
		out = append(out, int(b-'0'))
	}
	return out
}

// Strip collects every ASCII digit value in s and discards everything else.
// Used once a format mask has matched, so separators are dropped rather than
// treated as errors.
//
// Example:
//
//	Strip("288.111.210-27")
//	// Returns: []int{2, 8, 8, 1, 1, 1, 2, 1, 0, 2, 7}
func Strip(s string) []int {
	out := make([]int, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= '0' && b <= '9' {
			out = append(out, int(b-'0'))
		}
	}
	return out
}

// AllEqual reports whether every value in d equals the first. Sequences
// shorter than two are vacuously uniform.
func AllEqual(d []int) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// String renders digit values back into their ASCII representation. It is the
// inverse of Strip for inputs that contained only digits.
func String(d []int) string {
	out := make([]byte, len(d))
	for i, v := range d {
		out[i] = byte('0' + v)
	}
	return string(out)
}
