// Package kernel provides core domain primitives for the invoicing system.
// It implements the fundamental value objects used throughout the domain model.
//
// The package includes:
//   - InvoiceID: An opaque unique identifier for invoice aggregates
//   - Money: A non-negative monetary amount in minor currency units
//   - Quantity: A positive count of billed units
//   - CustomerName, ProductName: Bounded non-empty display names
//   - CustomerEmail: A validated email address
//
// These primitives are immutable and self-validating: construction goes
// through factory functions that enforce the invariants, and the zero value
// of each type fails Validate. They are safe for concurrent use.
package kernel
