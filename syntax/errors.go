package syntax

import "errors"

// ErrNotFound is returned when a namespace, variable or anchor path does not
// resolve in the scanned text.
var ErrNotFound = errors.New("not found")

// ErrMalformed is returned when a construct cannot be delimited, for example an
// unmatched brace or quote that runs to the end of the input.
var ErrMalformed = errors.New("malformed source")

// ErrEmptyPath is returned when a lookup is given an empty path.
var ErrEmptyPath = errors.New("empty path")
