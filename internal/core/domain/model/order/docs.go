// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is placed by a customer against a single pharmacy and carries
// drug references into the catalog plus owned service lines whose prices
// are snapshotted at creation time. The lifecycle is strictly monotonic:
//
//	pending ──> accepted ──> delivered
//
// A rider is assigned exactly once, at acceptance, and only that rider may
// mark the order delivered. The aggregate enforces guard ordering for the
// transitions; the repository layer makes them atomic against concurrent
// acceptance with conditional updates.
package order
