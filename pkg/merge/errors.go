package merge

import "errors"

var (
	// ErrInvalidExtension is returned when the requested extension cannot name a file suffix.
	ErrInvalidExtension = errors.New("invalid extension")

	// ErrNotText is returned when a candidate's content is not valid UTF-8.
	ErrNotText = errors.New("file is not valid UTF-8 text")
)
