package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidWorkers is returned when the worker count is below 1.
	ErrInvalidWorkers = errors.New("invalid scheduler worker count")

	// ErrInvalidQueueSize is returned when the queue size is below 1.
	ErrInvalidQueueSize = errors.New("invalid scheduler queue size")

	// ErrInvalidLogLevel is returned for unknown log levels.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
