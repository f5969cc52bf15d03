/*
The middleware package defines what a middleware is in waypoint and a set of basic middlewares.

The available middlewares are:
- Authorize (and RequireIssuer)
- CORS
- ForceHTTPS
- InjectIPAddress
- InjectUserInfo
- LogRequest
- RateLimitBySubject
- ReportPanic
- RequestID
- SimulateGateway

Due to the amount of configuration required, middleware does not provide a default middleware chain
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.SimulateGateway(env),
		middleware.InjectUserInfo(log),
		middleware.RateLimitBySubject(vs),
		middleware.LogRequest(log),
	}

SimulateGateway must come before InjectUserInfo;
RateLimitBySubject and LogRequest read the user info InjectUserInfo stashes,
so they sit after it.
*/
package middleware
