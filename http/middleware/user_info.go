package middleware

import (
	"errors"
	"net/http"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// InjectUserInfo decodes the end-user identity the gateway relays in the
// waypoint.HeaderName request header and promotes it to *http.Request.Context
// under waypoint.UserInfoKey.
//
// Handlers wrapped by InjectUserInfo retrieve the identity with
// [waypoint.FromContext]; it is always present when they run.
//
// A request missing the header, or carrying a value that fails base64
// decoding or JSON parsing, stops here: InjectUserInfo writes 400 with a body
// naming what went wrong and never calls the wrapped handler.
//
// Decode and parse failures are reported through ls when one is provided; a
// missing header is an expected condition and is not logged. A nil ls only
// disables that reporting, never the checks themselves.
func InjectUserInfo(ls logger.Logger) Adapter {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			info, err := waypoint.FromHeader(r.Header)
			if err != nil {
				if ls != nil && !errors.Is(err, waypoint.ErrNotFound) {
					ls.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
				}

				respondText(w, http.StatusBadRequest, err.Error())
				return
			}

			handler.ServeHTTP(w, r.Clone(waypoint.NewContext(r.Context(), info)))
		})
	}
}

// respondText writes code and body to w verbatim.
//
// Not http.Error: that suffixes body with a newline,
// and clients match on the exact bodies waypoint errors carry.
func respondText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	w.Write([]byte(body))
}
