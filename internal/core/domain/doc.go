// Package domain defines the core business entities for WetHelder.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Reference: A candidate legal source (statute, ruling, fine code)
//   - SearchQuery: A user question plus optional structured context
//   - ScoredCandidate: A reference paired with its relevance score
//   - ReliabilityAssessment: Confidence label and caveats for a result set
//   - QueryRecord: The persisted question/answer/sources tuple
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
