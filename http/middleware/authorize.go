package middleware

import (
	"net/http"

	"github.com/xy-planning-network/waypoint"
)

// Authorize wraps a custom function validating the user info the gateway
// relayed for the request.
//
// Authorize retrieves the value for waypoint.UserInfoKey from the request
// Context, so it must sit after InjectUserInfo in a middleware chain.
// A request carrying no user info gets 401.
//
// If fn returns true, Authorize passes the request to the next handler in the
// middleware stack. If fn returns false, Authorize writes 403 and does not.
//
// If fn is nil, Authorize returns NoopAdapter.
func Authorize(fn func(info waypoint.UserInfo) bool) Adapter {
	if fn == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, ok := waypoint.FromContext(r.Context())
			if !ok {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if !fn(info) {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}

// RequireIssuer constructs an Authorize Adapter allowing only user info whose
// "iss" claim matches one of the provided issuers.
func RequireIssuer(issuers ...string) Adapter {
	return Authorize(func(info waypoint.UserInfo) bool {
		for _, iss := range issuers {
			if info.Issuer() == iss {
				return true
			}
		}

		return false
	})
}
