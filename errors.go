package md2office

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrUnknownTarget = errors.New("unknown conversion target")

	// Settings validation errors. Invalid settings are programmer errors
	// and fail fast at entry; malformed markdown content never errors.
	ErrInvalidContentWidth = errors.New("invalid content width")
	ErrInvalidImageWidth   = errors.New("invalid image width")
	ErrInvalidTableFont    = errors.New("invalid table font size")
	ErrInvalidListDepth    = errors.New("invalid list depth limit")
)
