// Package kernel provides core domain primitives and utilities for the
// supply-chain coordination system. It implements fundamental building blocks
// following Domain-Driven Design principles that are used throughout the
// domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Actor: A value object carrying the resolved caller identity (role plus tenant)
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
