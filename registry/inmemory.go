package registry

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/logger"
	"github.com/evercart/eventschema/serde"
	"github.com/evercart/eventschema/taxonomy"
	"github.com/evercart/eventschema/version"
)

// Interface implementation assertion.
var _ Registry = new(InMemory)

// InMemory is a thread-safe, in-memory Registry implementation, suitable
// for single-process deployments where the catalog is rebuilt at startup.
type InMemory struct {
	log logger.Logger

	// mx guards both schemas and latest: updates to the version map and
	// to the latest-version index must appear atomic to readers.
	mx      sync.RWMutex
	schemas map[string]map[string]*SchemaVersion
	latest  map[string]string
}

// Option customizes an InMemory registry instance.
type Option func(*InMemory)

// WithLogger attaches a structured logger to the registry. Registrations
// are logged at debug level, deprecations at warning level.
func WithLogger(log logger.Logger) Option {
	return func(r *InMemory) { r.log = log }
}

// NewInMemory creates a new, empty InMemory registry instance.
func NewInMemory(opts ...Option) *InMemory {
	r := &InMemory{
		schemas: make(map[string]map[string]*SchemaVersion),
		latest:  make(map[string]string),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register implements the registry.Registry interface.
func (r *InMemory) Register(eventType, schemaVersion string, def Definition) error {
	if def == nil {
		return fmt.Errorf("registry.InMemory: expected a schema definition, nil was provided instead")
	}

	if !taxonomy.IsValid(eventType) {
		return ErrInvalidType{EventType: eventType}
	}

	parsed, err := version.Parse(schemaVersion)
	if err != nil {
		return fmt.Errorf("registry.InMemory: failed to parse schema version, %w", err)
	}

	r.mx.Lock()
	defer r.mx.Unlock()

	if _, ok := r.schemas[eventType][schemaVersion]; ok {
		return ErrDuplicateSchema{EventType: eventType, Version: schemaVersion}
	}

	if r.schemas[eventType] == nil {
		r.schemas[eventType] = make(map[string]*SchemaVersion)
	}

	r.schemas[eventType][schemaVersion] = &SchemaVersion{
		Version:    schemaVersion,
		Definition: def,
		CreatedAt:  time.Now().UTC(),
	}

	if current, ok := r.latest[eventType]; !ok {
		r.latest[eventType] = schemaVersion
	} else {
		// current was validated when it was registered.
		currentParsed, _ := version.Parse(current)

		if parsed.Compare(currentParsed) > 0 {
			r.latest[eventType] = schemaVersion
		}
	}

	logger.Debug(r.log, "registered event schema",
		logger.With("event_type", eventType),
		logger.With("event_version", schemaVersion),
	)

	return nil
}

// GetSchema implements the registry.Registry interface.
func (r *InMemory) GetSchema(eventType, schemaVersion string) (Definition, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	versions, ok := r.schemas[eventType]
	if !ok {
		return nil, false
	}

	if schemaVersion == "" {
		if schemaVersion, ok = r.latest[eventType]; !ok {
			return nil, false
		}
	}

	record, ok := versions[schemaVersion]
	if !ok {
		return nil, false
	}

	return record.Definition, true
}

// Validate implements the registry.Registry interface.
//
// It checks the top-level {metadata, data} structure, parses the metadata
// into the envelope model, resolves the schema registered for the declared
// (event type, event version) pair, and decodes and validates the data
// payload against it. No registry state is changed, on success or failure.
func (r *InMemory) Validate(raw map[string]any) (event.GenericEnvelope, error) {
	var zeroValue event.GenericEnvelope

	metadataRaw, ok := raw["metadata"].(map[string]any)
	if !ok {
		return zeroValue, ErrMalformedEvent{Field: "metadata"}
	}

	dataRaw, ok := raw["data"].(map[string]any)
	if !ok {
		return zeroValue, ErrMalformedEvent{Field: "data"}
	}

	metadata, err := event.ParseMetadata(metadataRaw)
	if err != nil {
		return zeroValue, fmt.Errorf("registry.InMemory: failed to parse event metadata, %w", err)
	}

	def, ok := r.GetSchema(metadata.EventType, metadata.EventVersion)
	if !ok {
		return zeroValue, ErrSchemaNotFound{
			EventType: metadata.EventType,
			Version:   metadata.EventVersion,
		}
	}

	payload, err := decodePayload(def, dataRaw)
	if err != nil {
		return zeroValue, fmt.Errorf("registry.InMemory: failed to decode event payload, %w", err)
	}

	if err := payload.Validate(); err != nil {
		return zeroValue, fmt.Errorf("registry.InMemory: payload does not conform to schema, %w", err)
	}

	return event.GenericEnvelope{Metadata: metadata, Data: payload}, nil
}

func decodePayload(def Definition, raw map[string]any) (event.Payload, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to encode raw payload, %w", err)
	}

	deserialize := serde.NewJSONDeserializer(def.New)

	payload, err := deserialize.Deserialize(data)
	if err != nil {
		return nil, event.ErrValidation{
			Field:    "data",
			Expected: "schema-conformant payload",
			Actual:   err.Error(),
		}
	}

	return payload, nil
}

// EvolutionPath implements the registry.Registry interface.
func (r *InMemory) EvolutionPath(eventType, from, to string) []string {
	versions := r.Versions(eventType)

	fromIdx, toIdx := -1, -1

	for i, v := range versions {
		if v == from {
			fromIdx = i
		}

		if v == to {
			toIdx = i
		}
	}

	if fromIdx < 0 || toIdx < 0 || fromIdx > toIdx {
		return nil
	}

	return versions[fromIdx : toIdx+1]
}

// EventTypes implements the registry.Registry interface.
func (r *InMemory) EventTypes() []string {
	r.mx.RLock()
	defer r.mx.RUnlock()

	eventTypes := make([]string, 0, len(r.schemas))
	for eventType := range r.schemas {
		eventTypes = append(eventTypes, eventType)
	}

	sort.Strings(eventTypes)

	return eventTypes
}

// Versions implements the registry.Registry interface.
func (r *InMemory) Versions(eventType string) []string {
	r.mx.RLock()
	defer r.mx.RUnlock()

	records, ok := r.schemas[eventType]
	if !ok {
		return nil
	}

	versions := make([]string, 0, len(records))
	for v := range records {
		versions = append(versions, v)
	}

	// Stored versions are validated on Register, so sorting cannot fail.
	_ = version.Sort(versions)

	return versions
}

// Lookup implements the registry.Registry interface.
func (r *InMemory) Lookup(eventType, schemaVersion string) (SchemaVersion, bool) {
	r.mx.RLock()
	defer r.mx.RUnlock()

	record, ok := r.schemas[eventType][schemaVersion]
	if !ok {
		return SchemaVersion{}, false
	}

	return *record, true
}

// MarkDeprecated implements the registry.Registry interface.
func (r *InMemory) MarkDeprecated(eventType, schemaVersion, migrationNotes string) {
	r.mx.Lock()
	defer r.mx.Unlock()

	record, ok := r.schemas[eventType][schemaVersion]
	if !ok {
		return
	}

	record.Deprecated = true

	if migrationNotes != "" {
		record.MigrationNotes = migrationNotes
	}

	logger.Warn(r.log, "deprecated event schema",
		logger.With("event_type", eventType),
		logger.With("event_version", schemaVersion),
	)
}
