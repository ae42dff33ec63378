// Package orchestrator wires the document pipeline end to end: payload
// validation and decoding, image prefetching, model assembly, theme
// resolution, and renderer dispatch. Construction applies working defaults
// for every collaborator so callers can start with New() alone.
package orchestrator
