// Package middleware contains HTTP middleware for the embedded Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - rayid: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//   - requestlog: Logs every request through zap, scoped with its RayID.
//   - auth: Rejects requests lacking the per-server token. It guards the UI
//     event endpoints so that only pages served by this server can trigger
//     click listeners (including the development shutdown button).
//
// rayid and requestlog are registered on the whole application; auth is
// registered on the UI event route group.
package middleware
