// Package cache provides a namespaced TTL cache used to serve repeated
// requests without rerunning the processing pipeline. Entries expire
// lazily on read; hit and miss counters are kept per namespace.
package cache
