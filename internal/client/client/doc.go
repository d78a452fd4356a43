// Package client talks to the gophdemo API server.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Status, Login, Users and ProcessData.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) that attaches the
//     bearer token its TokenSource holds and maps failures to package errors.
//
// # Error Handling
//
// Transport failures (refused connection, DNS, reset) match ErrUnavailable
// with errors.Is. Non-2xx answers are returned as *APIError carrying the
// server's message; a 401 additionally matches ErrUnauthorized.
//
// Calls have no timeout and no retry. Use the context to cancel.
package client
