// Package server provides HTTP routing and middleware for the web interface.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses a gorilla/mux router internally with method matching.
//
// # Middleware
//
// [RequestID] tags every request with a uuid (reusing an incoming X-Request-ID header) and [Logging] writes one
// line per request with the method, path, status and duration. [Recover] turns handler panics into 500s.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
