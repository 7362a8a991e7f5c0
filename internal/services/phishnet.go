// Phish.net v5 [Service] implementation
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/desertthunder/phx/internal/shared"
)

// PhishNetService implements the Service interface for the Phish.net v5 API.
type PhishNetService struct {
	api *APIService
}

// NewPhishNetService creates a new Phish.net service backed by api.
func NewPhishNetService(api *APIService) *PhishNetService {
	return &PhishNetService{api: api}
}

// Name returns the service name.
func (p *PhishNetService) Name() string {
	return "Phish.net"
}

// GetShows returns show records whose column equals value.
//
// Calls GET /shows/{column}/{value}.json.
func (p *PhishNetService) GetShows(ctx context.Context, column, value string) ([]any, error) {
	return p.Query(ctx, MethodShows, column, value)
}

// GetSetlists returns setlist records whose column equals value.
//
// Calls GET /setlists/{column}/{value}.json.
func (p *PhishNetService) GetSetlists(ctx context.Context, column, value string) ([]any, error) {
	return p.Query(ctx, MethodSetlists, column, value)
}

// Raw performs the query and returns the undecoded [APIResponse].
func (p *PhishNetService) Raw(ctx context.Context, method, column, value string) (*APIResponse, error) {
	if !validMethod(method) {
		return nil, fmt.Errorf("%w: unknown method %q", shared.ErrInvalidArgument, method)
	}
	if !validColumn(column) {
		return nil, fmt.Errorf("%w: unknown column %q", shared.ErrInvalidArgument, column)
	}
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: empty %s value", shared.ErrMissingArgument, column)
	}

	path := fmt.Sprintf("%s/%s/%s.json", method, column, url.PathEscape(value))
	return p.api.Get(ctx, path)
}

// Query performs the query and unwraps the response envelope.
//
// A null or missing data field yields a nil slice. A lone object is wrapped into a one element slice.
func (p *PhishNetService) Query(ctx context.Context, method, column, value string) ([]any, error) {
	resp, err := p.Raw(ctx, method, column, value)
	if err != nil {
		return nil, err
	}

	env, _ := resp.JSONData.(map[string]any)

	if !resp.OK() {
		if msg := envelopeMessage(env); msg != "" {
			return nil, fmt.Errorf("%w: phish.net error (status %d): %s", shared.ErrAPIRequest, resp.StatusCode, msg)
		}
		return nil, fmt.Errorf("%w: phish.net error: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if env == nil {
		return nil, fmt.Errorf("%w: unexpected response body from %s", shared.ErrAPIRequest, method)
	}

	if truthy(env["error"]) {
		msg := envelopeMessage(env)
		if msg == "" {
			msg = "unknown error"
		}
		return nil, fmt.Errorf("%w: phish.net error: %s", shared.ErrAPIRequest, msg)
	}

	switch data := env["data"].(type) {
	case nil:
		return nil, nil
	case []any:
		return data, nil
	default:
		return []any{data}, nil
	}
}

func envelopeMessage(env map[string]any) string {
	if env == nil {
		return ""
	}
	msg, _ := env["error_message"].(string)
	return strings.TrimSpace(msg)
}

// truthy interprets the envelope's error flag, which may be a bool, number or string.
func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case json.Number:
		return t.String() != "0"
	case float64:
		return t != 0
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s != "" && s != "0" && s != "false"
	}
	return false
}
