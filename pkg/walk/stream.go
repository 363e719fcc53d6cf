// SPDX-License-Identifier: MPL-2.0

package walk

import (
	"context"
	"iter"
	"sync/atomic"
)

const (
	// StateIdle indicates production has not started yet.
	StateIdle StreamState = iota
	// StateEmitting indicates descriptors are being produced.
	StateEmitting
	// StateEnded is terminal: every descriptor was delivered and no error occurred.
	StateEnded
	// StateErrored is terminal: production stopped on an error.
	StateErrored
)

type (
	// StreamState represents the lifecycle state of a Stream.
	StreamState int32

	// Stream delivers the descriptors of one walk in order.
	//
	// Receive from Data until it is closed, then check Err: nil means the
	// walk ended cleanly, anything else is the single error that stopped it.
	// A Stream is single-use and must be drained or closed.
	Stream struct {
		data   chan Descriptor
		done   chan struct{}
		cancel context.CancelFunc
		state  atomic.Int32
		// err is written once before done is closed.
		err error
	}

	// Handlers receives stream signals through callbacks. Nil callbacks are
	// ignored. Exactly one of OnError and OnEnd is called, after the last OnData.
	Handlers struct {
		OnData  func(Descriptor)
		OnError func(error)
		OnEnd   func()
	}
)

// String returns a human-readable representation of the stream state.
func (s StreamState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEmitting:
		return "emitting"
	case StateEnded:
		return "ended"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the state is StateEnded or StateErrored.
func (s StreamState) IsTerminal() bool {
	return s == StateEnded || s == StateErrored
}

// newStream runs produce on its own goroutine. Every emit blocks until the
// consumer receives the descriptor or the stream is cancelled.
func newStream(parent context.Context, produce func(context.Context, emitFunc) error) *Stream {
	ctx, cancel := context.WithCancel(parent)
	s := &Stream{
		data:   make(chan Descriptor),
		done:   make(chan struct{}),
		cancel: cancel,
	}
	s.state.Store(int32(StateIdle))

	go s.run(ctx, produce)

	return s
}

func (s *Stream) run(ctx context.Context, produce func(context.Context, emitFunc) error) {
	defer s.cancel()

	s.state.Store(int32(StateEmitting))
	err := produce(ctx, func(d Descriptor) error {
		select {
		case s.data <- d:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	if err != nil {
		s.err = err
		s.state.Store(int32(StateErrored))
	} else {
		s.state.Store(int32(StateEnded))
	}

	// done is closed first so that Err is settled once Data reads as closed.
	close(s.done)
	close(s.data)
}

// Data returns the channel of descriptors. It is closed when the walk ends
// or fails.
func (s *Stream) Data() <-chan Descriptor { return s.data }

// Done returns a channel that is closed when production has finished.
func (s *Stream) Done() <-chan struct{} { return s.done }

// Err returns the error that stopped the stream, or nil when the stream
// ended cleanly or is still running.
func (s *Stream) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}

// State returns the current lifecycle state.
func (s *Stream) State() StreamState {
	return StreamState(s.state.Load())
}

// Close stops production and waits for the producer to exit. No filesystem
// request is issued after Close returns. Closing a finished stream is a no-op.
func (s *Stream) Close() {
	s.cancel()
	<-s.done
}

// All returns an iterator over the stream. The error, if any, is yielded
// once as the last element. Breaking out of the loop closes the stream.
func (s *Stream) All() iter.Seq2[Descriptor, error] {
	return func(yield func(Descriptor, error) bool) {
		for d := range s.data {
			if !yield(d, nil) {
				s.Close()
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(Descriptor{}, err)
		}
	}
}

// Collect drains the stream. On error it returns the descriptors received
// before the error together with the error.
func (s *Stream) Collect() ([]Descriptor, error) {
	var out []Descriptor
	for d := range s.data {
		out = append(out, d)
	}
	return out, s.Err()
}

// Each drains the stream into h and returns the terminating error, if any.
func (s *Stream) Each(h Handlers) error {
	for d := range s.data {
		if h.OnData != nil {
			h.OnData(d)
		}
	}

	if err := s.Err(); err != nil {
		if h.OnError != nil {
			h.OnError(err)
		}
		return err
	}
	if h.OnEnd != nil {
		h.OnEnd()
	}
	return nil
}
