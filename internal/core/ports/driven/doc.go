// Package driven defines the outbound ports of the DAKForge core.
//
// These are the capabilities the core consumes but does not implement:
// the staging-ground byte store (Storage) and the per-kind format hooks
// (ComponentAdapter). Adapters under internal/adapters/driven and
// internal/components provide the implementations.
package driven
