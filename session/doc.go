// Package session provides session storage backends. The default
// InMemoryStore keeps sessions process-local; alternative backends can be
// plugged in through the core.SessionStore interface.
package session
