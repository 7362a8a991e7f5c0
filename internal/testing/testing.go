// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"
)

// MockService is a test double for [services.Service].
//
// Responses are keyed by "method/column/value", e.g. "setlists/showdate/1999-07-24".
type MockService struct {
	mu        sync.Mutex
	Responses map[string][]any
	Errors    map[string]error
	Calls     []string
}

// NewMockService creates a [MockService] with empty response tables.
func NewMockService() *MockService {
	return &MockService{Responses: map[string][]any{}, Errors: map[string]error{}}
}

// On registers the data returned for a query.
func (m *MockService) On(method, column, value string, data []any) *MockService {
	m.Responses[Key(method, column, value)] = data
	return m
}

// Fail registers an error returned for a query.
func (m *MockService) Fail(method, column, value string, err error) *MockService {
	m.Errors[Key(method, column, value)] = err
	return m
}

// Query returns the registered data for the query and records the call.
func (m *MockService) Query(ctx context.Context, method, column, value string) ([]any, error) {
	key := Key(method, column, value)

	m.mu.Lock()
	m.Calls = append(m.Calls, key)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := m.Errors[key]; ok {
		return nil, err
	}
	return m.Responses[key], nil
}

func (m *MockService) GetShows(ctx context.Context, column, value string) ([]any, error) {
	return m.Query(ctx, "shows", column, value)
}

func (m *MockService) GetSetlists(ctx context.Context, column, value string) ([]any, error) {
	return m.Query(ctx, "setlists", column, value)
}

func (m *MockService) Name() string { return "mock" }

// CallCount returns the number of queries made so far.
func (m *MockService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// Key joins a query into the lookup key used by [MockService].
func Key(method, column, value string) string {
	return fmt.Sprintf("%s/%s/%s", method, column, value)
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

// SetlistRecord builds a setlist record as Phish.net returns it.
func SetlistRecord(showID any, set any, position any, song string) map[string]any {
	return map[string]any{
		"showid":   showID,
		"set":      set,
		"position": position,
		"song":     song,
	}
}
