// Package shipment contains the shipment aggregate: the entity with its
// field invariants, the status lifecycle state machine, and the tracking
// number generator. Everything here is pure domain logic with no
// persistence or transport concerns.
package shipment
