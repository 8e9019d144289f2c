// File: pkg/merge/text.go
package merge

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// readText reads the whole file and returns its content as a string.
// Content that does not decode as UTF-8 yields ErrNotText.
func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s", ErrNotText, path)
	}
	return string(data), nil
}
