package llm

import (
	"context"
)

// StreamingClient issues one streaming inference call and returns the fully
// drained response.
// This allows mocking in tests without making real API calls.
type StreamingClient interface {
	InvokeModelStream(ctx context.Context, request Request) (*Response, error)
}
