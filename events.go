package lnpulse

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lnpulse/lnpulse-go/sse"
)

// WatchEvent pairs an event type with a decoded resource snapshot.
type WatchEvent[T any] struct {
	// Type is the SSE event type, e.g. "settled".
	Type string
	// Data is the resource snapshot carried by the event.
	Data T
}

// WatchStream yields typed events from a per-resource watch endpoint.
// Records without an explicit event type never surface. The stream must be
// closed when the consumer is done with it.
type WatchStream[T any] struct {
	stream *sse.Stream
}

// Next returns the next event. It blocks until the server delivers one,
// returns io.EOF when the server closes the stream, and fails promptly when
// the watch context is cancelled.
func (w *WatchStream[T]) Next() (*WatchEvent[T], error) {
	ev, err := w.stream.Next()
	if err != nil {
		return nil, err
	}
	var data T
	if err := json.Unmarshal(ev.Data, &data); err != nil {
		return nil, fmt.Errorf("lnpulse: decode %s event: %w", ev.Type, err)
	}
	return &WatchEvent[T]{Type: ev.Type, Data: data}, nil
}

// Close releases the underlying connection.
func (w *WatchStream[T]) Close() error {
	return w.stream.Close()
}

// WalletEvent is one record from the wallet-wide event stream. Unlike the
// per-resource watchers, the tag travels inside the payload, so no "event:"
// line is required on the wire.
type WalletEvent struct {
	// Event names the event, e.g. "invoice.settled".
	Event string `json:"event"`
	// CreatedAt is the server-side event timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// Data is the event payload; its shape depends on Event.
	Data json.RawMessage `json:"data"`
}

// EventsService streams wallet-wide events.
type EventsService struct {
	client *Client
}

// EventStream yields wallet-wide events. The stream must be closed when the
// consumer is done with it.
type EventStream struct {
	stream *sse.Stream
}

// Stream opens the wallet-wide event stream. The stream stays open until
// the server closes it or ctx is cancelled; it is not restartable, callers
// reconnect by calling Stream again.
func (s *EventsService) Stream(ctx context.Context) (*EventStream, error) {
	st, err := s.client.stream(ctx, apiPrefix+"/events", false)
	if err != nil {
		return nil, err
	}
	return &EventStream{stream: st}, nil
}

// Next returns the next wallet event. It blocks until the server delivers
// one and returns io.EOF when the stream ends.
func (s *EventStream) Next() (*WalletEvent, error) {
	ev, err := s.stream.Next()
	if err != nil {
		return nil, err
	}
	var event WalletEvent
	if err := json.Unmarshal(ev.Data, &event); err != nil {
		return nil, fmt.Errorf("lnpulse: decode wallet event: %w", err)
	}
	return &event, nil
}

// Close releases the underlying connection.
func (s *EventStream) Close() error {
	return s.stream.Close()
}
