// Package middleware provides HTTP middleware for the Gather API.
//
// The middlewares compose with Chain, outermost first:
//
//	handler := middleware.Chain(mux,
//		middleware.RequestID,
//		middleware.Logger,
//		middleware.Recovery,
//		middleware.CORS(origins),
//		middleware.Compress,
//	)
//
// RequestID tags every request with an X-Request-ID that Logger and
// Recovery include in their log lines; GetRequestID reads it back out
// of the request context.
package middleware
