package dimacs

import "errors"

// ErrInvalidFormat is wrapped with additional context and returned by
// Parse whenever a line does not match the "p min", "n", or "a" grammar,
// or essential fields (the problem line) are missing.
var ErrInvalidFormat = errors.New("dimacs: invalid format")
