package event

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Metadata identifies one event instance and carries the supporting
// information used for routing, correlation and auditing.
//
// Metadata is created fresh per event instance and is immutable once built.
type Metadata struct {
	// EventID uniquely identifies this event instance.
	EventID uuid.UUID `json:"event_id"`

	// EventType is the taxonomy event type, e.g. "order.created".
	EventType string `json:"event_type"`

	// EventVersion is the schema version the data payload conforms to.
	EventVersion string `json:"event_version"`

	// EventSource names the system that produced the event.
	EventSource string `json:"event_source"`

	// Timestamp records when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// CorrelationID groups events belonging to the same logical flow.
	CorrelationID uuid.NullUUID `json:"correlation_id"`

	// CausationID points at the event that caused this one.
	CausationID uuid.NullUUID `json:"causation_id"`

	// ActorID identifies the user or system that triggered the event.
	ActorID string `json:"actor_id,omitempty"`
}

// MetadataOption customizes a Metadata instance built through NewMetadata.
type MetadataOption func(*Metadata)

// WithEventID overrides the generated event id.
func WithEventID(id uuid.UUID) MetadataOption {
	return func(m *Metadata) { m.EventID = id }
}

// WithVersion overrides the default schema version.
func WithVersion(version string) MetadataOption {
	return func(m *Metadata) { m.EventVersion = version }
}

// WithSource overrides the default event source.
func WithSource(source string) MetadataOption {
	return func(m *Metadata) { m.EventSource = source }
}

// WithTimestamp overrides the generated occurrence timestamp.
func WithTimestamp(ts time.Time) MetadataOption {
	return func(m *Metadata) { m.Timestamp = ts }
}

// WithCorrelationID sets the correlation id.
func WithCorrelationID(id uuid.UUID) MetadataOption {
	return func(m *Metadata) { m.CorrelationID = uuid.NullUUID{UUID: id, Valid: true} }
}

// WithCausationID sets the causation id.
func WithCausationID(id uuid.UUID) MetadataOption {
	return func(m *Metadata) { m.CausationID = uuid.NullUUID{UUID: id, Valid: true} }
}

// WithActorID sets the actor id.
func WithActorID(actorID string) MetadataOption {
	return func(m *Metadata) { m.ActorID = actorID }
}

// NewMetadata builds the Metadata for a fresh event instance of the given
// event type, generating a new event id and occurrence timestamp, and
// applying DefaultVersion and DefaultSource unless overridden through
// the provided options.
func NewMetadata(eventType string, opts ...MetadataOption) Metadata {
	metadata := Metadata{
		EventID:      uuid.New(),
		EventType:    eventType,
		EventVersion: DefaultVersion,
		EventSource:  DefaultSource,
		Timestamp:    time.Now().UTC(),
	}

	for _, opt := range opts {
		opt(&metadata)
	}

	return metadata
}

// ParseMetadata parses the raw metadata section of an inbound event into
// a Metadata value.
//
// Required fields are event_id (UUID string), event_type, event_source and
// timestamp (RFC 3339 string); event_version falls back to DefaultVersion
// when absent. correlation_id, causation_id and actor_id are optional.
//
// An ErrValidation instance is returned for any missing or ill-typed field.
func ParseMetadata(raw map[string]any) (Metadata, error) {
	var metadata Metadata

	eventID, err := uuidField(raw, "event_id", true)
	if err != nil {
		return Metadata{}, err
	}

	metadata.EventID = eventID.UUID

	if metadata.EventType, err = stringField(raw, "event_type", true); err != nil {
		return Metadata{}, err
	}

	if metadata.EventVersion, err = stringField(raw, "event_version", false); err != nil {
		return Metadata{}, err
	}

	if metadata.EventVersion == "" {
		metadata.EventVersion = DefaultVersion
	}

	if metadata.EventSource, err = stringField(raw, "event_source", true); err != nil {
		return Metadata{}, err
	}

	rawTimestamp, err := stringField(raw, "timestamp", true)
	if err != nil {
		return Metadata{}, err
	}

	if metadata.Timestamp, err = time.Parse(time.RFC3339, rawTimestamp); err != nil {
		return Metadata{}, ErrValidation{
			Field:    "metadata.timestamp",
			Expected: "RFC 3339 timestamp string",
			Actual:   fmt.Sprintf("'%s'", rawTimestamp),
		}
	}

	if metadata.CorrelationID, err = uuidField(raw, "correlation_id", false); err != nil {
		return Metadata{}, err
	}

	if metadata.CausationID, err = uuidField(raw, "causation_id", false); err != nil {
		return Metadata{}, err
	}

	if metadata.ActorID, err = stringField(raw, "actor_id", false); err != nil {
		return Metadata{}, err
	}

	return metadata, nil
}

func stringField(raw map[string]any, field string, required bool) (string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		if required {
			return "", ErrValidation{
				Field:    "metadata." + field,
				Expected: "string",
				Actual:   "missing",
			}
		}

		return "", nil
	}

	s, ok := v.(string)
	if !ok {
		return "", ErrValidation{
			Field:    "metadata." + field,
			Expected: "string",
			Actual:   fmt.Sprintf("%T", v),
		}
	}

	return s, nil
}

func uuidField(raw map[string]any, field string, required bool) (uuid.NullUUID, error) {
	s, err := stringField(raw, field, required)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	if s == "" {
		return uuid.NullUUID{}, nil
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.NullUUID{}, ErrValidation{
			Field:    "metadata." + field,
			Expected: "UUID string",
			Actual:   fmt.Sprintf("'%s'", s),
		}
	}

	return uuid.NullUUID{UUID: id, Valid: true}, nil
}
