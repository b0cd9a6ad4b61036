package sse

import "io"

const readChunkSize = 4096

// Stream pulls decoded events from an open event-stream body. It is not
// restartable: once the body is exhausted, re-observing events requires a
// new request. Cancelling the context of the request that opened the body
// makes the in-flight read fail, which Next reports as an error.
type Stream struct {
	body    io.ReadCloser
	dec     Decoder
	pending []Event
	err     error
	chunk   []byte
}

// NewStream wraps an open response body. requireType selects the decoder
// mode, see Decoder.RequireType.
func NewStream(body io.ReadCloser, requireType bool) *Stream {
	return &Stream{
		body:  body,
		dec:   Decoder{RequireType: requireType},
		chunk: make([]byte, readChunkSize),
	}
}

// Next returns the next decoded event. It blocks until the server delivers
// a complete record, returns io.EOF when the stream ends, and surfaces a
// transport failure exactly once; events decoded before the failure are
// still delivered first.
func (s *Stream) Next() (*Event, error) {
	for {
		if len(s.pending) > 0 {
			ev := s.pending[0]
			s.pending = s.pending[1:]
			return &ev, nil
		}
		if s.err != nil {
			return nil, s.err
		}

		n, err := s.body.Read(s.chunk)
		if n > 0 {
			s.pending = s.dec.Feed(s.chunk[:n])
		}
		if err != nil {
			// Remember the failure but drain decoded events first.
			s.err = err
		}
	}
}

// Close releases the underlying body. It must be called on every exit path
// from a decode loop, including early abandonment by the consumer.
func (s *Stream) Close() error {
	return s.body.Close()
}
