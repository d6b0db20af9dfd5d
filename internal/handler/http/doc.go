// Package http implements the HTTP transport of the archive server.
//
// It exposes route wiring, request handlers and middleware for the REST API
// and the public object download path. Cross-cutting concerns such as
// authentication, request tracing, access logging, compression and CORS are
// handled here before requests are delegated to the service layer.
package http
