// Package domain contains the core domain model for the choices service.
//
// This package defines:
//   - Entities: Query and Choice, the request and result row of a choices lookup
//   - Value Objects: PoolStats
//   - Domain Errors: the error taxonomy shared by the executor, worker and client
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
package domain
