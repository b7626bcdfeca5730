// Package registry implements the event schema registry: the single source
// of truth for which payload shape is valid for a given event type and
// schema version.
//
// The registry is an in-process catalog, rebuilt at startup through the
// bootstrap sequence (see Container). Registered schemas are never deleted,
// only marked deprecated, so that historical events can always be
// re-validated and replayed.
package registry

import (
	"fmt"
	"time"

	"github.com/evercart/eventschema/event"
)

// Definition is the opaque shape descriptor for one event payload: a
// factory producing fresh payload instances to decode raw event data into.
type Definition interface {
	New() event.Payload
}

// DefinitionFunc is a functional adapter for the Definition interface.
type DefinitionFunc func() event.Payload

// New implements the registry.Definition interface.
func (fn DefinitionFunc) New() event.Payload { return fn() }

// SchemaVersion is one registered (event type, version) pairing, together
// with its lifecycle flags.
//
// A SchemaVersion moves from registered to deprecated, and is never
// removed from the catalog.
type SchemaVersion struct {
	// Version is the schema version string, e.g. "1.0".
	Version string

	// Definition is the payload shape registered for this version.
	Definition Definition

	// CreatedAt records when this version was registered.
	CreatedAt time.Time

	// Deprecated marks versions that should no longer be produced.
	Deprecated bool

	// CompatibleWith lists versions this one is backward compatible with.
	CompatibleWith []string

	// MigrationNotes optionally describes how to migrate off this version.
	MigrationNotes string
}

// Registry is the catalog of event schemas and the operations used to
// manage it over the process lifetime.
//
// Alternative backing implementations (e.g. a shared external catalog)
// must provide the full method set; no subset may be left unimplemented.
type Registry interface {
	// Register adds a new schema for the given event type and version.
	//
	// It fails with ErrInvalidType if the event type is not part of the
	// taxonomy, with version.ErrParse if the version string is malformed,
	// and with ErrDuplicateSchema if the (type, version) pair is already
	// present. Registrations are never silently overwritten.
	Register(eventType, version string, def Definition) error

	// GetSchema resolves the Definition registered for the event type and
	// version. An empty version resolves to the latest registered version.
	//
	// The second return value is false when no matching schema exists;
	// absence is an expected outcome, not an error.
	GetSchema(eventType, version string) (Definition, bool)

	// Validate checks a raw event against the envelope model and the
	// schema registered for its declared type and version, returning the
	// fully-typed envelope on success.
	//
	// Validation is all-or-nothing: it fails with ErrMalformedEvent when
	// the top-level structure is missing, event.ErrValidation when
	// metadata or payload fields are invalid, and ErrSchemaNotFound when
	// the declared (type, version) has no registered schema.
	Validate(raw map[string]any) (event.GenericEnvelope, error)

	// EvolutionPath returns the inclusive, ordered list of registered
	// versions between from and to.
	//
	// The path is directional: it is empty when the event type is
	// unknown, when either endpoint is not an exact registered version,
	// or when from sorts after to.
	EvolutionPath(eventType, from, to string) []string

	// EventTypes lists the event types with at least one registered
	// schema.
	EventTypes() []string

	// Versions lists the registered versions for the event type in
	// ascending numeric order, or an empty list if the type is unknown.
	Versions(eventType string) []string

	// Lookup returns the SchemaVersion record for the (type, version)
	// pair, if present.
	Lookup(eventType, version string) (SchemaVersion, bool)

	// MarkDeprecated flags the (type, version) pair as deprecated,
	// optionally attaching migration notes. Deprecating a pair that does
	// not exist is a no-op.
	MarkDeprecated(eventType, version, migrationNotes string)
}

// ErrInvalidType is returned when registering a schema for an event type
// that is not part of the closed taxonomy.
type ErrInvalidType struct {
	EventType string
}

func (err ErrInvalidType) Error() string {
	return fmt.Sprintf("registry: event type '%s' is not part of the taxonomy", err.EventType)
}

// ErrDuplicateSchema is returned when registering a (type, version) pair
// that is already present in the catalog.
type ErrDuplicateSchema struct {
	EventType string
	Version   string
}

func (err ErrDuplicateSchema) Error() string {
	return fmt.Sprintf(
		"registry: schema already registered for '%s' version '%s'",
		err.EventType,
		err.Version,
	)
}

// ErrMalformedEvent is returned when the input to Validate lacks the
// required top-level structure.
type ErrMalformedEvent struct {
	Field string
}

func (err ErrMalformedEvent) Error() string {
	return fmt.Sprintf("registry: malformed event, missing or invalid '%s' mapping", err.Field)
}

// ErrSchemaNotFound is returned when a valid taxonomy event type has no
// schema registered for the requested version.
//
// This is distinct from ErrInvalidType: the type exists in the taxonomy,
// but no payload shape has been registered for it.
type ErrSchemaNotFound struct {
	EventType string
	Version   string
}

func (err ErrSchemaNotFound) Error() string {
	return fmt.Sprintf(
		"registry: no schema registered for '%s' version '%s'",
		err.EventType,
		err.Version,
	)
}
