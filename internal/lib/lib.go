// Package lib holds infrastructure that does not belong to a single layer.
//
// It contains the Redis definition cache and background job processing
// (Asynq) that keeps that cache warm.
package lib
