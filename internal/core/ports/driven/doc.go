// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - ReferenceCatalog: The curated catalog of fine codes, statute
//     topics and keyword tables
//   - QueryLogStore: Append-only persistence of answered questions
//   - RateLimiter: Per-IP daily quota accounting
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - WebSearchService: External web search. Without it, external
//     verification is skipped and confidence is lowered.
//   - CaseLawService: The case-law API. Without it, rulings only
//     surface through web search.
//   - LLMService: Text completion. Its absence (or failure) is the
//     only condition that fails an ask request outright.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
