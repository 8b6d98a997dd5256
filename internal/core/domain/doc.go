// Package domain defines the core business entities for DAKForge.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DAK: The top-level Digital Adaptation Kit aggregate
//   - ComponentType: The nine DAK component kinds
//   - Source: A tagged descriptor of where component content lives
//   - Repository: The (owner, repo, branch) storage scope
//   - ValidationResult: The outcome of component validation
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
