package llm

import "context"

// MockClient is a test double for the Client interface.
type MockClient struct {
	Response *Response
	Chunks   []string // streamed fragments for StreamChat
	Err      error
	Calls    []string // records prompts and messages sent
}

// Complete records the call and returns the mock response.
func (m *MockClient) Complete(ctx context.Context, system, prompt string) (*Response, error) {
	m.Calls = append(m.Calls, prompt)
	return m.Response, m.Err
}

// StreamChat records the call, replays the configured chunks through
// onDelta, and returns their concatenation.
func (m *MockClient) StreamChat(ctx context.Context, system string, history []Message, message string, onDelta func(string)) (*Response, error) {
	m.Calls = append(m.Calls, message)
	if m.Err != nil {
		return nil, m.Err
	}

	full := ""
	for _, chunk := range m.Chunks {
		full += chunk
		if onDelta != nil {
			onDelta(chunk)
		}
	}
	if m.Response != nil {
		return m.Response, nil
	}
	return &Response{Content: full, Provider: "mock"}, nil
}
