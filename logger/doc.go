/*

Package logger provides logging functionality to an app hosting gateway-fronted APIs
by defining the required behavior in [Logger]
and providing an implementation of it with [WaypointLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, [WaypointLogger] accepts a [LogLevel],
and if initialized with [LogLevelWarn],
only [*WaypointLogger.Warn], [*WaypointLogger.Error], and [*WaypointLogger.Fatal] produce messages.

# WaypointLogger

The [WaypointLogger] provides all the logging functionality needed for an app fronted by an API gateway.
It is the implementation of [Logger] returned by the [New] function.

Log messages emitted by [WaypointLogger] are composed of a few parts:
	- timestamp
	- log level
	- call site
	- message
	- log context

Here's an example:
	2022/04/28 15:55:21 [ERROR] web/dashboard_handler.go:43 'Invalid X-Endpoint-API-UserInfo : Not a valid JSON' log_context: "{"user":"{"sub": "auth0|123", "email": "hiker@example.com"}}"

The file, line number, and parent directory of where a [WaypointLogger] comprise the call site.
The message is the actual string passed into the [WaypointLogger] method, in this example, [*WaypointLogger.Error].
Lastly, the log context is a JSON-encoded [*LogContext].
The last component allows for including additional data inessential to the message proper,
but provides a fuller picture of the application state at the time of logging.

# SkipLogger

Sometimes, especially with internal packages, the file and line number in a log needs to be configurable.
[SkipLogger] provides additional configuration functionality by setting the number of frames to skip
back in order to reach the desired caller.
*/
package logger
