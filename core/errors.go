package core

import "errors"

var (
	// ErrSessionNotFound is returned when an operation references a session
	// id that is not in the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoParticipants is returned at construction when the registry failed
	// to populate. Fatal at startup.
	ErrNoParticipants = errors.New("no participants registered")

	// ErrHubClosed is returned for operations attempted after shutdown.
	ErrHubClosed = errors.New("hub is shut down")
)
