// Package order provides domain entities and business logic for delivery
// order management in the logistics system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root that manages order identity, parcel properties, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid identifier, shipper, positive dimensions and weight,
//     and validated pickup/drop coordinates
//   - Order status follows a defined workflow:
//     PENDING -> ASSIGNED -> SHIPPED -> DELIVERED, with CANCELLED reachable
//     from PENDING or ASSIGNED and ASSIGNED -> PENDING via unassignment
//   - An order references a vehicle exactly while its status is not PENDING
//     or CANCELLED
//   - Parcel volume is always derived from the dimensions, never stored
//   - Orders are never physically deleted; terminal states are retained for history
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
