// API service for making raw HTTP requests to Phish.net
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

const defaultBaseURL string = "https://api.phish.net/v5"

// APIOpts contains configuration options for creating an [APIService].
type APIOpts struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	RateLimit  float64 // Requests per second, zero disables limiting
}

// APIService provides methods for making raw HTTP requests to the Phish.net API.
type APIService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewAPIService creates a new API service instance for Phish.net.
func NewAPIService(opts APIOpts) *APIService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultBaseURL
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	}

	return &APIService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		httpClient: opts.HTTPClient,
		limiter:    limiter,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status code is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Get performs a GET request to the specified path (relative to the base URL) and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	fullURL, err := a.buildURL(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	if err := a.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", a.redact(err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var jsonData any
	if err := dec.Decode(&jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

func (a *APIService) buildURL(path string) (string, error) {
	u, err := url.Parse(a.baseURL + "/" + strings.TrimLeft(path, "/"))
	if err != nil {
		return "", err
	}

	if a.apiKey != "" {
		q := u.Query()
		q.Set("apikey", a.apiKey)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// redact strips the API key from the URL carried by transport errors.
func (a *APIService) redact(err error) error {
	var urlErr *url.Error
	if a.apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}

	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(a.apiKey), "REDACTED"),
		Err: urlErr.Err,
	}
}
