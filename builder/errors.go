package builder

import "errors"

// ErrTooFewNodes indicates that n is smaller than the allowed minimum for
// the requested constructor (3 for Ring, 2 for Complete).
// Usage: if errors.Is(err, ErrTooFewNodes) { /* report invalid size */ }.
var ErrTooFewNodes = errors.New("builder: parameter too small")
