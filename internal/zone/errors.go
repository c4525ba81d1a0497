package zone

import "errors"

// ErrInvalidState is returned (never panicked) when a Move is requested for
// cards that are not actually present in the declared source zone — a
// caller-supplied precondition failure, not a mutation that already
// happened and needs rolling back. This mirrors the teacher's sentinel-
// error convention (errors.New package vars returned by domain/app
// use-case methods) rather than exceptions-as-control-flow.
var ErrInvalidState = errors.New("zone: invalid move")
