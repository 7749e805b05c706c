package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// MockResponse defines a response for a mock endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string

	// Delay holds the response back; it is cut short when the client
	// cancels the request.
	Delay time.Duration
}

// RecordedRequest captures details about a request made to the mock server.
type RecordedRequest struct {
	Method  string
	Path    string
	Headers http.Header
}

// MockServer provides a configurable HTTP test server serving dataset files.
// It records all requests for verification and returns configured responses.
type MockServer struct {
	*httptest.Server
	mu        sync.Mutex
	responses map[string]MockResponse // path -> response
	Requests  []RecordedRequest
}

// NewMockServer creates a new mock HTTP server. Close it when done.
func NewMockServer() *MockServer {
	m := &MockServer{
		responses: make(map[string]MockResponse),
		Requests:  make([]RecordedRequest, 0),
	}

	m.Server = httptest.NewServer(http.HandlerFunc(m.handleRequest))

	return m
}

// Expect configures the response for GET requests to path.
func (m *MockServer) Expect(path string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[path] = resp
}

// ServeCSV serves data at path with a 200 status.
func (m *MockServer) ServeCSV(path string, data *CSV) {
	m.Expect(path, MockResponse{
		StatusCode: http.StatusOK,
		Body:       data.String(),
		Headers:    map[string]string{"Content-Type": "text/csv"},
	})
}

// URLFor returns the absolute URL for path.
func (m *MockServer) URLFor(path string) string {
	return m.Server.URL + path
}

// handleRequest processes an incoming request.
func (m *MockServer) handleRequest(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.Requests = append(m.Requests, RecordedRequest{
		Method:  r.Method,
		Path:    r.URL.Path,
		Headers: r.Header.Clone(),
	})
	resp, ok := m.responses[r.URL.Path]
	m.mu.Unlock()

	if !ok || r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no mock response configured\n"))
		return
	}

	if resp.Delay > 0 {
		select {
		case <-time.After(resp.Delay):
		case <-r.Context().Done():
			return
		}
	}

	m.writeResponse(w, resp)
}

// writeResponse writes the configured response.
func (m *MockServer) writeResponse(w http.ResponseWriter, resp MockResponse) {
	for k, v := range resp.Headers {
		w.Header().Set(k, v)
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/plain")
	}

	if resp.StatusCode == 0 {
		resp.StatusCode = http.StatusOK
	}
	w.WriteHeader(resp.StatusCode)

	_, _ = w.Write([]byte(resp.Body))
}

// RequestCount returns the number of requests received.
func (m *MockServer) RequestCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockServer) LastRequest() *RecordedRequest {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.Requests) == 0 {
		return nil
	}
	req := m.Requests[len(m.Requests)-1]
	return &req
}

// Reset clears all recorded requests and configured responses.
func (m *MockServer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = make([]RecordedRequest, 0)
	m.responses = make(map[string]MockResponse)
}
