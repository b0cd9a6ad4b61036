// Package sse implements an incremental decoder for Server-Sent Events as
// emitted by the LNPulse streaming endpoints.
//
// The decoder is split into a pure parsing state (Decoder) and a pull-based
// reader over an open response body (Stream). All framing logic lives in
// Decoder.Feed, so it can be tested against arbitrary chunk boundaries
// without a live connection.
package sse

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Event is one decoded SSE record: an event type paired with a raw JSON
// payload. Type is empty when the decoder runs in self-tagging mode and the
// record arrived without an "event:" line.
type Event struct {
	Type string
	Data json.RawMessage
}

// Decoder holds the incremental parse state for one stream: the unterminated
// tail of the input and the event type waiting to be paired with a data
// line. The zero value is ready to use. A Decoder must not be shared across
// streams; each decode loop owns its own.
type Decoder struct {
	// RequireType drops data lines that arrive without a preceding
	// "event:" line. The per-resource watch endpoints tag every record
	// with an explicit type; the wallet-wide event stream carries the tag
	// inside the payload instead, so it runs with RequireType false.
	RequireType bool

	buf         []byte
	pendingType string
}

// Feed consumes one chunk of the raw byte stream and returns the events
// completed by it, in order. Chunk boundaries are arbitrary: a record, a
// line, or a multi-byte UTF-8 sequence may be split anywhere and the
// decoder reassembles it. Only lines terminated by '\n' are parsed; the
// trailing fragment stays buffered until the next chunk and is discarded if
// the stream ends first.
func (d *Decoder) Feed(chunk []byte) []Event {
	d.buf = append(d.buf, chunk...)

	var events []Event
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			break
		}
		line := string(d.buf[:i])
		d.buf = d.buf[i+1:]
		if ev, ok := d.parseLine(line); ok {
			events = append(events, ev)
		}
	}
	return events
}

// parseLine handles one complete line and reports whether it completed an
// event.
func (d *Decoder) parseLine(line string) (Event, bool) {
	switch {
	case strings.HasPrefix(line, "event:"):
		// Overwrites any previous pending type. A type that is never
		// followed by a data line silently expires.
		d.pendingType = strings.TrimSpace(line[len("event:"):])

	case strings.HasPrefix(line, "data:"):
		payload := strings.TrimSpace(line[len("data:"):])
		if payload == "" {
			return Event{}, false
		}
		if !json.Valid([]byte(payload)) {
			// Keepalive tokens and other non-JSON payloads never
			// surface, as events or as errors.
			return Event{}, false
		}
		if d.pendingType == "" && d.RequireType {
			return Event{}, false
		}
		ev := Event{Type: d.pendingType, Data: json.RawMessage(payload)}
		d.pendingType = ""
		return ev, true
	}
	// Blank separator lines and comments fall through here.
	return Event{}, false
}
