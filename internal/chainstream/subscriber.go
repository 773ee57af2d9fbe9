package chainstream

import (
	"context"
	"errors"
)

var (
	// ErrConnection is returned when the transport handshake, authentication or
	// the subscription request itself fails. It is fatal at startup.
	ErrConnection = errors.New("block subscription connection failed")

	// ErrStream wraps a single malformed or failed element of an otherwise open
	// subscription. It is recovered by the consumer.
	ErrStream = errors.New("block stream error")

	// ErrStreamClosed records why a transport ended the sequence.
	ErrStreamClosed = errors.New("block stream closed")
)

// Subscriber opens a streaming subscription to new-block events.
type Subscriber interface {
	// Subscribe connects, authenticates and issues the block subscription.
	// It returns only after the provider acknowledged the subscription.
	//
	// The returned channel is a lazy, unbounded sequence of BlockEvent values.
	// It is closed when the transport ends or ctx is canceled, and it is never
	// reopened: callers that want a new subscription must call Subscribe again.
	Subscribe(ctx context.Context) (<-chan BlockEvent, error)
}
