// Package participant provides the reasoning participants of the engine: a
// read-only Registry, scripted personas forming the default professional
// team, and an LLM-backed participant that delegates text generation to a
// model.Completer.
package participant
