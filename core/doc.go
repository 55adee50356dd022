// Package core contains the shared domain types of the HiveMind
// collaboration engine: participants and their profiles, sessions with their
// append-only contribution log, collaboration opportunities, synthesis
// results, and the store/cache interfaces implemented by collaborator
// packages. It has no dependencies on the orchestration packages so every
// other package can import it freely.
package core
