package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a recording HTTP server standing in for third-party APIs.
// Requests are keyed by method and path.
type ApiMock struct {
	mu        sync.Mutex
	server    *httptest.Server
	requests  map[string][]map[string]any
	headers   map[string][]http.Header
	responses map[string]any
	statuses  map[string]int
}

// NewApiServer creates an unstarted mock.
func NewApiServer() *ApiMock {
	a := &ApiMock{}
	a.Reset()
	return a
}

// Start begins serving. Call GetUrl afterwards.
func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

// Close stops the server.
func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + r.URL.Path

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	a.mu.Lock()
	a.requests[key] = append(a.requests[key], request)
	a.headers[key] = append(a.headers[key], r.Header.Clone())
	status, ok := a.statuses[key]
	if !ok {
		status = http.StatusOK
	}
	response, ok := a.responses[key]
	if !ok {
		response = map[string]any{}
	}
	a.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}

// GetUrl returns the base URL of the running server.
func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

// SetResponse configures the reply for every request to method and path.
func (a *ApiMock) SetResponse(method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.statuses[method+path] = status
	a.responses[method+path] = response
}

// GetRequestBody returns the decoded JSON body of the index-th request, or nil.
func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.requests[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

// GetRequestHeaders returns the headers of the index-th request, or nil.
func (a *ApiMock) GetRequestHeaders(method, path string, index int) http.Header {
	a.mu.Lock()
	defer a.mu.Unlock()
	received := a.headers[method+path]
	if index < 0 || index >= len(received) {
		return nil
	}
	return received[index]
}

// RequestCount returns how many requests hit method and path.
func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests[method+path])
}

// Reset forgets recorded requests and configured responses.
func (a *ApiMock) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.requests = map[string][]map[string]any{}
	a.headers = map[string][]http.Header{}
	a.responses = map[string]any{}
	a.statuses = map[string]int{}
}
