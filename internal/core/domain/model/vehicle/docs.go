// Package vehicle contains the Vehicle aggregate: a fleet vehicle with its
// plate, capacity limits (max weight and max volume), the service zone it
// operates in, and an optional driver link. Capacity usage is never stored
// on the vehicle; it is always derived from the active orders assigned to it.
package vehicle
