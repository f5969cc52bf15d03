// Package waypoint extracts the end-user identity an API gateway relays to
// its backends through the X-Endpoint-API-UserInfo header.
//
// Gateways such as the Extensible Service Proxy validate a request's JWT and
// forward the token's claims to the backend as a base64-encoded JSON value.
// waypoint decodes that value once per request and hands it to HTTP handlers,
// rejecting requests carrying a missing or mangled header with a 400.
package waypoint

import "context"

// HeaderName is the request header the gateway writes the end-user identity to.
//
// Header names are case-insensitive, so any casing of HeaderName matches.
const HeaderName = "X-Endpoint-API-UserInfo"

// A UserInfo wraps the JSON value decoded from the gateway header.
//
// The gateway relays whatever claims the original token carried, so UserInfo
// enforces no schema: the wrapped value can be a JSON object, array, string,
// number, boolean or null. Accessors return zero values rather than erroring
// when the wrapped value does not have the requested shape.
//
// A UserInfo is constructed fresh from the header on each request and has no
// identity beyond that request.
type UserInfo struct {
	value any
}

// New wraps value in a UserInfo.
//
// Handlers never need New; it exists so tests can stash a known UserInfo in a
// [context.Context] without round-tripping through the gateway header.
func New(value any) UserInfo { return UserInfo{value: value} }

// Value returns the wrapped JSON value as decoded by [encoding/json]:
// map[string]any, []any, string, float64, bool or nil.
func (u UserInfo) Value() any { return u.value }

// Map returns the wrapped value as a JSON object.
//
// Map returns nil when the value is not an object. The returned map is the
// wrapped value itself, not a copy.
func (u UserInfo) Map() map[string]any {
	m, ok := u.value.(map[string]any)
	if !ok {
		return nil
	}

	return m
}

// String returns the string held under key in the wrapped JSON object.
//
// String returns "" when the value is not an object, the key is absent,
// or the field is not a JSON string.
func (u UserInfo) String(key string) string {
	s, ok := u.Map()[key].(string)
	if !ok {
		return ""
	}

	return s
}

// NewContext returns a copy of ctx carrying u under UserInfoKey.
func NewContext(ctx context.Context, u UserInfo) context.Context {
	return context.WithValue(ctx, UserInfoKey, u)
}

// FromContext retrieves the UserInfo stashed in ctx by NewContext,
// reporting whether one was present.
func FromContext(ctx context.Context) (UserInfo, bool) {
	u, ok := ctx.Value(UserInfoKey).(UserInfo)
	return u, ok
}
