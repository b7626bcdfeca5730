// Package event contains the envelope model all Evercart domain events
// conform to: a metadata section identifying the event instance, and a
// schema-conformant data payload.
package event

// Default values applied to event metadata when the producing side does not
// specify them explicitly.
const (
	// DefaultVersion is the schema version assumed for events that do not
	// declare one.
	DefaultVersion = "1.0"

	// DefaultSource identifies the platform as the producing system.
	DefaultSource = "evercart-platform"
)

// Payload is the typed data portion of a domain event.
//
// Each payload declares the event type it belongs to, and knows how to
// check its own shape constraints after being decoded from a raw
// representation.
type Payload interface {
	// EventType returns the taxonomy event type this payload belongs to,
	// e.g. "order.created".
	EventType() string

	// Validate checks the shape constraints of the payload, returning an
	// ErrValidation instance describing the first violated field.
	Validate() error
}

// Envelope bundles the data payload of one event instance together with
// its metadata.
type Envelope[T Payload] struct {
	Metadata Metadata `json:"metadata"`
	Data     T        `json:"data"`
}

// GenericEnvelope is the Envelope variant used when the concrete payload
// type is resolved dynamically, such as on the registry validation path.
type GenericEnvelope = Envelope[Payload]
