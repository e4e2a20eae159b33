// Package services contains domain services that do not belong to a single
// aggregate. The availability validator cross-checks a requested set of
// offerings against a pharmacy's current catalog links before an order may
// be created.
package services
