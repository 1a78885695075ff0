// Package model holds the data shapes shared across layers:
// persisted entities, request payloads and response bodies.
//
// Request payloads implement validation.Validatable so the handler
// pipeline can bind and validate them before a service runs.
package model

import "github.com/go-playground/validator/v10"

// validate is shared by every payload; validator caches struct metadata
// per instance, so one instance is reused.
var validate = validator.New()
