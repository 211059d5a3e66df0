package common

// WipeByteArray overwrites the contents of b with zeros. It is used to drop
// passwords read from the terminal as soon as they are no longer needed.
//
// If the slice is nil, the function does nothing.
func WipeByteArray(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}
