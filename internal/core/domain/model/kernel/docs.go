// Package kernel provides core domain primitives for the logistics system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: a value object for geographic coordinates in (latitude, longitude) order
//   - BoxDimensions: a value object for parcel dimensions with derived volume
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
