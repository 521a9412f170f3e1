// Package octets has in-place helpers for fixed width byte buffers.
package octets

// RotateLeft rotates x left by n positions in place.
// The first n bytes move to the end.
func RotateLeft(x []byte, n int) {
	if len(x) == 0 {
		return
	}
	n %= len(x)
	if n < 0 {
		n += len(x)
	}
	reverse(x[:n])
	reverse(x[n:])
	reverse(x)
}

// RotateRight rotates x right by n positions in place.
// The last n bytes move to the front.
func RotateRight(x []byte, n int) {
	if len(x) == 0 {
		return
	}
	RotateLeft(x, len(x)-n%len(x))
}

func reverse(x []byte) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}
