// Package randid provides random ID generation utilities.
package randid

import "math/rand/v2"

const chars = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate creates a random alphanumeric ID of the specified length.
func Generate(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = chars[rand.IntN(len(chars))]
	}
	return string(b)
}

// TempName returns a sibling path of target for write-then-rename. The random
// suffix keeps two writers from sharing a temp file.
func TempName(target string) string {
	return target + "." + Generate(8) + ".tmp"
}
