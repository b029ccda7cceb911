// Package common defines shared sentinel errors used across itemkeeper
// components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Item-specific errors.
	ErrorNegativePrice = errors.New("price must not be negative")
	ErrorEmptyName     = errors.New("name must not be empty")

	// Task-queue errors.
	ErrorUnknownTask = errors.New("unknown task")
	ErrorQueueClosed = errors.New("queue is closed")
)
