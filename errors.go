package tilepack

import "errors"

var (
	// ErrUsage is returned for arguments that can never produce output,
	// eg. a negative row group or a mask combined with flag extraction.
	ErrUsage = errors.New("invalid arguments")

	// ErrParse covers malformed input documents & images.
	ErrParse = errors.New("parse error")

	// ErrBounds is returned when input data doesn't match the dimensions
	// it declares.
	ErrBounds = errors.New("out of bounds")
)
