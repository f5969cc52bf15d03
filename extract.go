package waypoint

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// FromHeader extracts the UserInfo the gateway relayed in h.
//
// The lookup of HeaderName is case-insensitive per HTTP semantics; when the
// header repeats, only the first value is read. The value is trimmed of
// surrounding whitespace, decoded as standard padded base64, and parsed as
// JSON. Each step gates the next:
//
//	header absent          -> ErrNotFound
//	base64 decode fails    -> ErrNotBase64
//	JSON parse fails       -> ErrNotJSON
//
// FromHeader performs no validation beyond JSON syntax: any JSON value the
// gateway relays round-trips into the returned UserInfo untouched.
func FromHeader(h http.Header) (UserInfo, error) {
	vals := h.Values(HeaderName)
	if len(vals) == 0 {
		return UserInfo{}, ErrNotFound
	}

	return ParseValue(vals[0])
}

// ParseValue decodes and parses one raw header value into a UserInfo.
//
// ParseValue is the header-presence-agnostic half of FromHeader, for callers
// that already hold the value, such as tooling replaying captured headers.
func ParseValue(value string) (UserInfo, error) {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return UserInfo{}, ErrNotBase64
	}

	var parsed any
	if err := json.Unmarshal(decoded, &parsed); err != nil {
		return UserInfo{}, ErrNotJSON
	}

	return UserInfo{value: parsed}, nil
}
