package ioformat

import "errors"

// ErrMalformedInput wraps any failure to parse a graph file or stream:
// a participle syntax error, a header/edge-count mismatch, or a
// graphcore.New validation failure (out-of-range vertex, self-loop,
// duplicate edge). Callers branch with errors.Is(err, ErrMalformedInput).
var ErrMalformedInput = errors.New("ioformat: malformed graph input")
