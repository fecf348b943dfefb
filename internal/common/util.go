package common

// WipeByteArray overwrites b with zeros. Use it on secrets read from the
// terminal once they have been checked.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
