// Package eventschema provides a versioned catalog of domain event schemas
// for the Evercart e-commerce platform.
//
// The catalog maps event types (e.g. "order.created") to the payload shapes
// that are valid for each schema version, and supports registration, lookup,
// validation of raw inbound events, deprecation, and version-evolution
// queries.
//
// Start from the `registry` package for the catalog itself, `taxonomy` for
// the closed vocabulary of event types, and `schemas` for the built-in
// payload definitions registered at application startup.
package eventschema
