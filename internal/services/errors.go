package services

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrUpstreamUnavailable covers network failures, timeouts and 5xx
	// responses from the generation upstream.
	ErrUpstreamUnavailable = errors.New("generation upstream unavailable")

	// ErrMalformedOutput is returned when the upstream responds 200 but the
	// payload cannot be used.
	ErrMalformedOutput = errors.New("generation upstream returned malformed output")

	// ErrBotRunning is returned when a bot is triggered while a previous run
	// of the same bot is still in flight.
	ErrBotRunning = errors.New("bot is already running")
)
