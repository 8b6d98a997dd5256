// Package services implements the DAKForge core orchestration.
//
// Three pieces live here:
//
//   - Resolver: translates a source descriptor into concrete content
//     through the Storage port, with idempotent input/ path prefixing.
//   - Collection: the generic per-kind orchestrator owning an ordered
//     source list and the uniform retrieve/save/validate contract.
//   - DAKService: the aggregate-level service owning one Collection per
//     component kind plus the input/dak.json lifecycle.
//
// Services depend only on domain and ports, never on concrete adapters.
package services
