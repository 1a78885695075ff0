// Package handler is the HTTP layer that sits right behind the router.
//
// Handlers bind and validate requests, call the service layer and map
// domain errors onto API errors.
package handler
