// Package kernel contains shared value objects used across the domain model.
// Identifiers for every aggregate and catalog entity are expressed as the
// UUID value object defined here, so repositories and use cases never pass
// raw strings around.
package kernel
