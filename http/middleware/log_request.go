package middleware

import (
	"net/http"
	"strings"

	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/logger"
)

// LogRequest logs the request's method, requested URL, originating IP address,
// and the subject of the user info the gateway relayed, when each is present
// in the request context, using the enclosed implementation of logger.Logger.
//
// LogRequest masks the values for the following query params:
// - password
//
// If ls is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uri := r.URL.Path
			q := r.URL.Query()
			waypoint.Mask(q, "password")

			if query := q.Encode(); query != "" {
				uri += "?" + query
			}

			strs := []string{r.Method, uri}
			if ip, ok := r.Context().Value(waypoint.IpAddrKey).(string); ok {
				strs = append([]string{ip}, strs...)
			}

			if info, ok := waypoint.FromContext(r.Context()); ok {
				if sub := info.Subject(); sub != "" {
					strs = append(strs, "sub="+sub)
				}
			}

			ls.Info(strings.Join(strs, " "), nil)
			h.ServeHTTP(w, r)
		})
	}
}
