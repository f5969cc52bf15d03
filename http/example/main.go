/*

Package main provides a toy example use of Waypoint's http stack.

It assembles the full middleware chain in front of two handlers:
one reachable without gateway user info and one requiring it.
Point a gateway at it, or run it in an environment allowing service
stubs and send a Bearer token for middleware.SimulateGateway to unpack.

*/
package main

import (
	"encoding/json"
	"net/http"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/waypoint"
	"github.com/xy-planning-network/waypoint/http/middleware"
	"github.com/xy-planning-network/waypoint/http/router"
	"github.com/xy-planning-network/waypoint/logger"
)

// Handler shares the initialized logger across all example responses.
type Handler struct {
	log logger.Logger
}

// ping needs nothing from the gateway.
func (h *Handler) ping(w http.ResponseWriter, _ *http.Request) {
	w.Write([]byte("pong"))
}

// whoami echoes back the claims the gateway forwarded with the request.
func (h *Handler) whoami(w http.ResponseWriter, r *http.Request) {
	info, ok := waypoint.FromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	b, err := json.Marshal(map[string]any{
		"aud":    info.Audience(),
		"email":  info.Email(),
		"iss":    info.Issuer(),
		"sub":    info.Subject(),
		"claims": info.Claims(),
	})
	if err != nil {
		h.log.Error(err.Error(), &logger.LogContext{Error: err, Request: r})
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(b)
}

// newApp wires the default middleware stack in front of the example routes.
func newApp(env waypoint.Environment, log logger.Logger) *router.Router {
	h := &Handler{log: log}
	vs := middleware.NewVisitors()

	r := router.New(env, middleware.LogRequest(log))
	r.OnEveryRequest(
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.CORS(waypoint.EnvVarOrString("CLIENT_URL", "")),
		middleware.SimulateGateway(env),
	)

	r.HandleRoutes(
		[]router.Route{
			{Path: "/ping", Method: http.MethodGet, Handler: h.ping},
		},
		middleware.LogRequest(log),
	)

	r.UserInfoRoutes(
		[]router.Route{
			{Path: "/whoami", Method: http.MethodGet, Handler: h.whoami},
		},
		log,
		middleware.RateLimitBySubject(vs),
		middleware.LogRequest(log),
	)

	r.HandleNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Oops no " + r.URL.Path))
	})

	return r
}

func main() {
	env := waypoint.EnvVarOrEnv("ENVIRONMENT", waypoint.Development)
	log := logger.New(logger.WithEnv(env.String()))

	addr := ":" + waypoint.EnvVarOrString("PORT", "8081")
	log.Info("listening on "+addr, nil)
	if err := http.ListenAndServe(addr, newApp(env, log)); err != nil {
		log.Fatal(err.Error(), &logger.LogContext{Error: err})
	}
}
