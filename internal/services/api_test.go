package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tu "github.com/desertthunder/phx/internal/testing"
)

func TestAPIService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Custom BaseURL and Client", func(t *testing.T) {
			customClient := &http.Client{}
			srv := NewAPIService(APIOpts{BaseURL: "http://example.com/v5/", HTTPClient: customClient})

			if srv.baseURL != "http://example.com/v5" {
				t.Errorf("expected trailing slash trimmed, got %s", srv.baseURL)
			}
			if srv.httpClient != customClient {
				t.Error("expected custom client to be used")
			}
		})

		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewAPIService(APIOpts{})

			if srv.baseURL != "https://api.phish.net/v5" {
				t.Errorf("expected default baseURL, got %s", srv.baseURL)
			}
		})

		t.Run("With Nil Client", func(t *testing.T) {
			srv := NewAPIService(APIOpts{BaseURL: "http://example.com"})

			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})
	})

	t.Run("Get", func(t *testing.T) {
		t.Run("Successful Request With JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/shows/showdate/1999-07-24.json" {
					t.Errorf("unexpected path %s", r.URL.Path)
				}
				if r.URL.Query().Get("apikey") != "secret-key" {
					t.Errorf("expected apikey query parameter, got %q", r.URL.RawQuery)
				}

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusOK)
				json.NewEncoder(w).Encode(map[string]any{"error": false, "data": []any{}})
			}))
			defer server.Close()

			srv := NewAPIService(APIOpts{BaseURL: server.URL, APIKey: "secret-key"})
			resp, err := srv.Get(context.Background(), "/shows/showdate/1999-07-24.json")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.StatusCode != http.StatusOK || !resp.OK() {
				t.Errorf("expected status 200, got %d", resp.StatusCode)
			}
			if !resp.IsJSON {
				t.Error("expected response to be JSON")
			}
			if resp.JSONData == nil {
				t.Error("expected JSONData to be populated")
			}
		})

		t.Run("Numbers Keep Their Digits", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"showid": 12526981031234567}`))
			}))
			defer server.Close()

			srv := NewAPIService(APIOpts{BaseURL: server.URL})
			resp, err := srv.Get(context.Background(), "x.json")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			data := resp.JSONData.(map[string]any)
			n, ok := data["showid"].(json.Number)
			if !ok {
				t.Fatalf("expected json.Number, got %T", data["showid"])
			}
			if n.String() != "12526981031234567" {
				t.Errorf("expected exact digits, got %s", n.String())
			}
		})

		t.Run("Successful Request With Non-JSON Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/plain")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("plain text response"))
			}))
			defer server.Close()

			srv := NewAPIService(APIOpts{BaseURL: server.URL})
			resp, err := srv.Get(context.Background(), "/test")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.IsJSON {
				t.Error("expected response to not be JSON")
			}
			if resp.JSONData != nil {
				t.Error("expected JSONData to be nil")
			}
			if string(resp.Body) != "plain text response" {
				t.Errorf("expected body 'plain text response', got %s", string(resp.Body))
			}
		})

		t.Run("Failed Request Creation", func(t *testing.T) {
			srv := NewAPIService(APIOpts{BaseURL: "http://example.com"})
			_, err := srv.Get(context.Background(), "/test\x00invalid")

			if err == nil {
				t.Fatal("expected error for invalid URL")
			}
			if !strings.Contains(err.Error(), "failed to create request") {
				t.Errorf("expected 'failed to create request' error, got %v", err)
			}
		})

		t.Run("Failed HTTP Request Redacts Key", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed")),
			}

			srv := NewAPIService(APIOpts{BaseURL: "http://example.com", APIKey: "secret-key", HTTPClient: client})
			_, err := srv.Get(context.Background(), "/test")

			if err == nil {
				t.Fatal("expected error for failed request")
			}
			if !strings.Contains(err.Error(), "request failed") {
				t.Errorf("expected 'request failed' error, got %v", err)
			}
			if strings.Contains(err.Error(), "secret-key") {
				t.Errorf("expected API key to be redacted, got %v", err)
			}
			if !strings.Contains(err.Error(), "REDACTED") {
				t.Errorf("expected redaction marker, got %v", err)
			}
		})

		t.Run("Failed Response Body Read", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(&http.Response{
					StatusCode: http.StatusOK,
					Body:       &tu.FCloser{},
					Header:     http.Header{},
				}, nil),
			}

			srv := NewAPIService(APIOpts{BaseURL: "http://example.com", HTTPClient: client})
			_, err := srv.Get(context.Background(), "/test")

			if err == nil {
				t.Fatal("expected error for failed body read")
			}
			if !strings.Contains(err.Error(), "failed to read response") {
				t.Errorf("expected 'failed to read response' error, got %v", err)
			}
		})

		t.Run("With Canceled Context", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			srv := NewAPIService(APIOpts{BaseURL: server.URL})
			_, err := srv.Get(ctx, "/test")

			if err == nil {
				t.Error("expected error for canceled context")
			}
		})

		t.Run("Rate Limit Honors Deadline", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{}`))
			}))
			defer server.Close()

			srv := NewAPIService(APIOpts{BaseURL: server.URL, RateLimit: 0.001})

			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			if _, err := srv.Get(ctx, "/first"); err != nil {
				t.Fatalf("expected first request to use the burst token, got %v", err)
			}

			_, err := srv.Get(ctx, "/second")
			if err == nil {
				t.Fatal("expected second request to be rate limited")
			}
			if !strings.Contains(err.Error(), "rate limiter") {
				t.Errorf("expected rate limiter error, got %v", err)
			}
		})

		t.Run("Response Headers Are Preserved", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-Custom-Header", "test-value")
				w.WriteHeader(http.StatusOK)
				w.Write([]byte("test"))
			}))
			defer server.Close()

			srv := NewAPIService(APIOpts{BaseURL: server.URL})
			resp, err := srv.Get(context.Background(), "/test")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.Headers.Get("X-Custom-Header") != "test-value" {
				t.Errorf("expected custom header 'test-value', got %s", resp.Headers.Get("X-Custom-Header"))
			}
		})
	})
}
