package types

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrNeedNotFound    = errors.New("need not found")
	ErrNGONotFound     = errors.New("ngo not found")
	ErrUnauthenticated = errors.New("authentication required")
	ErrUnknownSection  = errors.New("unknown section")
	ErrUnknownTab      = errors.New("unknown dashboard tab")
)
