// File: pkg/merge/config.go
package merge

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultDir is the directory scanned when Options.Dir is empty.
const DefaultDir = "."

// Options holds the inputs of a single merge run.
type Options struct {
	Dir       string // Directory to scan (non-recursive). Empty means DefaultDir.
	Extension string // Extension to match, without the leading dot.
	MaxSize   int64  // Exclusive upper bound on candidate size in bytes.
}

// Result describes what a merge run produced.
type Result struct {
	Output string   // Path of the output artifact.
	Merged []string // Names of merged files, in merge order.
}

// OutputName returns the output artifact name for ext.
func OutputName(ext string) string {
	return "merged." + ext
}

// normalize validates opts and fills in defaults.
func (o Options) normalize() (Options, error) {
	o.Extension = strings.TrimPrefix(o.Extension, ".")
	if o.Extension == "" {
		return o, fmt.Errorf("%w: extension is empty", ErrInvalidExtension)
	}
	if strings.ContainsRune(o.Extension, '/') || strings.ContainsRune(o.Extension, filepath.Separator) {
		return o, fmt.Errorf("%w: %q contains a path separator", ErrInvalidExtension, o.Extension)
	}
	if o.Dir == "" {
		o.Dir = DefaultDir
	}
	return o, nil
}
