// Package errs defines the error shapes returned to API clients.
//
// Every failure leaving the HTTP layer is an *HTTPError, so clients always
// receive the same JSON structure regardless of which layer failed.
package errs
