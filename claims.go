package waypoint

import "github.com/golang-jwt/jwt/v4"

// Claims returns the wrapped JSON object as [jwt.MapClaims] for handing off to
// code built around golang-jwt, or nil when the value is not an object.
//
// The gateway verified the token before relaying its claims, so Claims performs
// no validation of its own.
func (u UserInfo) Claims() jwt.MapClaims {
	m := u.Map()
	if m == nil {
		return nil
	}

	return jwt.MapClaims(m)
}

// Subject returns the "sub" claim or "".
func (u UserInfo) Subject() string { return u.String("sub") }

// Issuer returns the "iss" claim or "".
func (u UserInfo) Issuer() string { return u.String("iss") }

// Email returns the "email" claim or "".
func (u UserInfo) Email() string { return u.String("email") }

// Audience returns the "aud" claim, which RFC 7519 allows to be either a
// single string or an array of strings. Audience returns nil when the claim
// is absent or of another shape.
func (u UserInfo) Audience() []string {
	switch aud := u.Map()["aud"].(type) {
	case string:
		return []string{aud}
	case []any:
		auds := make([]string, 0, len(aud))
		for _, v := range aud {
			s, ok := v.(string)
			if !ok {
				return nil
			}

			auds = append(auds, s)
		}

		return auds
	default:
		return nil
	}
}
