package sidenav

import "errors"

var (
	// ErrAlreadyRunning is returned when Start is called on a running server.
	ErrAlreadyRunning = errors.New("sidenav: server already running")

	// ErrNotRunning is returned when Stop is called on a stopped server.
	ErrNotRunning = errors.New("sidenav: server not running")

	// ErrNilRenderer is returned when a server is created without a renderer.
	ErrNilRenderer = errors.New("sidenav: renderer is nil")
)
