package httpserver

import "errors"

var (
	// ErrStart wraps listen and serve failures.
	ErrStart = errors.New("http server: start failed")
	// ErrAlreadyRunning is returned by a second Run on the same Server.
	ErrAlreadyRunning = errors.New("http server: already running")
	// ErrShutdown wraps failures to drain connections within the timeout.
	ErrShutdown = errors.New("http server: graceful shutdown failed")
)
