package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// ReceivedRequest is one call the ledger mock served.
type ReceivedRequest struct {
	Headers map[string]string
	Queries map[string]string
	Body    map[string]any
}

type cannedResponse struct {
	status int
	body   any
}

// route holds what one "METHOD/path" key received and should answer.
// A path segment of "*" matches any value.
type route struct {
	received  []ReceivedRequest
	responses map[int]cannedResponse
	fallback  *cannedResponse
}

// LedgerApiMock stands in for the remote ledger service.
type LedgerApiMock struct {
	mu      sync.Mutex
	routes  map[string]*route
	server  *httptest.Server
	mockUrl string
}

func NewLedgerApiServer() *LedgerApiMock {
	return &LedgerApiMock{routes: map[string]*route{}}
}

func (a *LedgerApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	a.mockUrl = a.server.URL
}

func (a *LedgerApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *LedgerApiMock) GetUrl() string {
	return a.mockUrl
}

func (a *LedgerApiMock) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}

	received := ReceivedRequest{
		Headers: map[string]string{},
		Queries: map[string]string{},
		Body:    request,
	}
	for key, value := range r.Header {
		received.Headers[key] = value[0]
	}
	for key, value := range r.URL.Query() {
		received.Queries[key] = value[0]
	}

	a.mu.Lock()
	exact := a.routeFor(r.Method + r.URL.Path)
	index := len(exact.received)
	exact.received = append(exact.received, received)
	status, response := a.responseFor(r.Method, r.URL.Path, index)
	a.mu.Unlock()

	payload, _ := json.Marshal(response)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// SetResponse answers the index-th call to method+path. Index -1 sets the
// answer for every call without an indexed one.
func (a *LedgerApiMock) SetResponse(index int, method, path string, status int, response any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	rt := a.routeFor(method + path)
	canned := cannedResponse{status: status, body: response}
	if index == -1 {
		rt.fallback = &canned
		return
	}
	rt.responses[index] = canned
}

// Requests returns every call received on exactly method+path.
func (a *LedgerApiMock) Requests(method, path string) []ReceivedRequest {
	a.mu.Lock()
	defer a.mu.Unlock()

	if rt, ok := a.routes[method+path]; ok {
		return append([]ReceivedRequest(nil), rt.received...)
	}
	return nil
}

// RequestCount counts calls whose path has the given method and prefix.
func (a *LedgerApiMock) RequestCount(method, pathPrefix string) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	count := 0
	for key, rt := range a.routes {
		if strings.HasPrefix(key, method+pathPrefix) {
			count += len(rt.received)
		}
	}
	return count
}

// ClearResponses forgets every route starting with method+path.
func (a *LedgerApiMock) ClearResponses(method, path string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for key := range a.routes {
		if strings.HasPrefix(key, method+path) {
			delete(a.routes, key)
		}
	}
}

func (a *LedgerApiMock) routeFor(key string) *route {
	rt, ok := a.routes[key]
	if !ok {
		rt = &route{responses: map[int]cannedResponse{}}
		a.routes[key] = rt
	}
	return rt
}

func (a *LedgerApiMock) responseFor(method, path string, index int) (int, any) {
	for _, rt := range a.matchingRoutes(method, path) {
		if canned, ok := rt.responses[index]; ok {
			return canned.status, canned.body
		}
		if rt.fallback != nil {
			return rt.fallback.status, rt.fallback.body
		}
	}

	// 200 with an empty object keeps unconfigured calls harmless
	return http.StatusOK, map[string]any{}
}

// matchingRoutes returns the exact route first, then wildcard routes.
func (a *LedgerApiMock) matchingRoutes(method, path string) []*route {
	var matches []*route
	if rt, ok := a.routes[method+path]; ok {
		matches = append(matches, rt)
	}
	for key, rt := range a.routes {
		if key == method+path || !strings.HasPrefix(key, method) {
			continue
		}
		if matchPath(strings.TrimPrefix(key, method), path) {
			matches = append(matches, rt)
		}
	}
	return matches
}

func matchPath(pattern string, path string) bool {
	if pattern == path {
		return true
	}

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	if len(patternParts) != len(pathParts) {
		return false
	}

	for i := range patternParts {
		if patternParts[i] != "*" && patternParts[i] != pathParts[i] {
			return false
		}
	}

	return true
}
