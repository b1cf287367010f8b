// Package services provides domain services for the invoicing system.
// It implements business logic that operates on an aggregate but doesn't
// naturally belong to the aggregate's own public contract.
//
// The package includes:
//   - StatusTransitionService: a stateless policy that executes status
//     transitions requested as untyped input, reusing the aggregate's own
//     state machine so there is exactly one rule set
package services
