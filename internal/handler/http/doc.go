// Package http implements the HTTP transport of the planner authority.
//
// It exposes route wiring, request handlers, the realtime websocket endpoint
// and the middleware used by the REST API. Authentication, request tracing,
// access logging and request metrics are handled in this package before
// requests are delegated to the service layer.
package http
