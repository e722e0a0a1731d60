// Package caesar implements a plain substitution cipher over an arbitrary
// string alphabet. It shares no state with the RSA core; it ships here
// because the library's demo pairs the two.
package caesar

import "fmt"

// Shift rotates every symbol of message k positions forward in the given
// alphabet, wrapping around at the end. Spaces are dropped. A symbol that
// is not part of the alphabet is an error.
func Shift(message string, k uint8, alphabet []string) (string, error) {
	positions := make(map[string]int, len(alphabet))
	for i, s := range alphabet {
		positions[s] = i
	}

	var out []byte
	for _, r := range message {
		if r == ' ' {
			continue
		}
		pos, ok := positions[string(r)]
		if !ok {
			return "", fmt.Errorf("caesar: symbol %q not in alphabet", r)
		}
		out = append(out, alphabet[(pos+int(k))%len(alphabet)]...)
	}
	return string(out), nil
}
