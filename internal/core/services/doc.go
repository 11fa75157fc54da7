// Package services implements the driving port interfaces.
// Services contain the core business logic: keyword matching against
// the curated catalog, relevance scoring, multi-source merging,
// reliability assessment and answer orchestration.
//
// Services are pure Go with no external dependencies beyond the
// domain and port packages.
package services
