package llm

import "context"

// MockClient enables tests without a real LLM.
type MockClient struct {
	Response string
	Err      error
}

func (m *MockClient) Generate(ctx context.Context, prompt string) (string, error) {
	return m.Response, m.Err
}
