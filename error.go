package waypoint

import "errors"

// The extraction errors carry the exact message the gateway contract requires
// in a 400 response body, so they are returned flat, never wrapped.
var (
	ErrNotFound  = errors.New("Invalid " + HeaderName + " : Not found")
	ErrNotBase64 = errors.New("Invalid " + HeaderName + " : Not a valid base 64")
	ErrNotJSON   = errors.New("Invalid " + HeaderName + " : Not a valid JSON")
)

var (
	ErrBadConfig = errors.New("bad config")
	ErrNotValid  = errors.New("invalid")
)
