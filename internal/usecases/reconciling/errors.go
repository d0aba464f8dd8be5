package reconciling

import "errors"

var (
	ErrInvalidStore    = errors.New("invalid store")
	ErrUpstreamTimeout = errors.New("upstream timeout")
)
