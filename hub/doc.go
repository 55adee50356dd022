// Package hub contains the orchestration engine. A Hub drives each request
// through the analysis, collaboration, solution proposal and communication
// phases, serializes runs per session, deduplicates identical concurrent
// requests, and serves repeats from the response cache.
package hub
