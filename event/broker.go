package event

import (
	"fmt"
	"time"

	"github.com/evercart/eventschema/serde"
)

// BrokerMessage is the wire shape consumed by the messaging integration
// when publishing an event to a broker.
//
// The registry itself performs no network transmission; producing the
// message is the full extent of its outbound contract.
type BrokerMessage struct {
	// Headers carry the identifying subset of the event metadata.
	Headers map[string]string

	// Key is the partitioning key, the event id.
	Key string

	// Value is the JSON-encoded envelope.
	Value []byte
}

// ToBrokerMessage serializes the envelope into the message shape consumed
// by a broker producer integration.
func (e Envelope[T]) ToBrokerMessage() (BrokerMessage, error) {
	serialize := serde.NewJSONSerializer[Envelope[T]]()

	value, err := serialize.Serialize(e)
	if err != nil {
		return BrokerMessage{}, fmt.Errorf("event.Envelope: failed to serialize envelope, %w", err)
	}

	return BrokerMessage{
		Headers: map[string]string{
			"event_id":      e.Metadata.EventID.String(),
			"event_type":    e.Metadata.EventType,
			"event_version": e.Metadata.EventVersion,
			"timestamp":     e.Metadata.Timestamp.Format(time.RFC3339Nano),
		},
		Key:   e.Metadata.EventID.String(),
		Value: value,
	}, nil
}
