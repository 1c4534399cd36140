package service

import "errors"

// Pipeline error taxonomy. Handlers map these with errors.Is onto
// 400/404/500; anything unrecognized is treated as internal. Judgment
// degradation is deliberately absent: a failed AI reply becomes a
// fallback record, never an error.
var (
	ErrInvalidInput = errors.New("invalid or unsupported URL")
	ErrNotFound     = errors.New("not found upstream")
	ErrUpstream     = errors.New("upstream request failed")
)
