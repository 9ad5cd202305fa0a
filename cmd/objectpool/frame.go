package main

import (
	"github.com/google/uuid"
)

const framePayloadSize = 4096

// Frame is the demo pooled type. Its ID is assigned once at construction, so
// the number of distinct IDs seen by a worker is the number of allocations.
type Frame struct {
	ID      uuid.UUID
	Payload []byte
	Uses    int
}

func newFrameFactory(constructed *int) func() *Frame {
	return func() *Frame {
		*constructed++
		return &Frame{
			ID:      uuid.New(),
			Payload: make([]byte, 0, framePayloadSize),
		}
	}
}

// PreGetFromPool counts how often the frame has been handed out.
func (f *Frame) PreGetFromPool() error {
	f.Uses++
	return nil
}

// PreReturnToPool truncates the payload for the next user.
func (f *Frame) PreReturnToPool() error {
	f.Payload = f.Payload[:0]
	return nil
}
