// Package app contains application services that orchestrate use cases.
// This is the application layer in Clean Architecture - it coordinates
// domain logic and infrastructure through ports.
//
// Application Layer Responsibilities:
//   - Orchestrate use cases (accepting and listing quote requests)
//   - Coordinate between domain and infrastructure
//   - Handle cross-cutting concerns (logging, tracing, metrics)
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters)
//   - Storage details (that's store adapters)
//   - Core domain rules (that's the domain layer)
package app
