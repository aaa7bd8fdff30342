package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// EndpointConfig holds configuration for the serverless checkout endpoint.
type EndpointConfig struct {
	URL string `env:"CHECKOUT_ENDPOINT_URL,required"`
}

// EndpointProvider creates checkout sessions through a hosted serverless
// endpoint that fronts the payment processor.
//
// Wire format, fixed by the external interface:
//
//	POST {url}
//	Authorization: Bearer <credential>
//	{"price_id": "...", "mode": "...", "success_url": "...", "cancel_url": "..."}
//
// Success: 2xx with {"url": "..."}. Failure: non-2xx with {"error": "..."}.
type EndpointProvider struct {
	url    string
	client *http.Client
}

// EndpointOption configures an EndpointProvider.
type EndpointOption func(*EndpointProvider)

// WithHTTPClient sets a custom HTTP client, e.g. to add a request timeout.
// The default client follows the original single-attempt, no-deadline
// behavior.
func WithHTTPClient(client *http.Client) EndpointOption {
	return func(p *EndpointProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// NewEndpointProvider creates a provider for the given endpoint URL.
func NewEndpointProvider(cfg EndpointConfig, opts ...EndpointOption) (*EndpointProvider, error) {
	if cfg.URL == "" {
		return nil, ErrMissingEndpointURL
	}

	p := &EndpointProvider{
		url:    cfg.URL,
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

type endpointRequest struct {
	PriceID    string `json:"price_id"`
	Mode       string `json:"mode"`
	SuccessURL string `json:"success_url"`
	CancelURL  string `json:"cancel_url"`
}

type endpointResponse struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CreateSession issues exactly one request to the checkout endpoint.
func (p *EndpointProvider) CreateSession(ctx context.Context, req Request) (*Session, error) {
	if req.PriceID == "" {
		return nil, ErrMissingPriceID
	}

	body, err := json.Marshal(endpointRequest{
		PriceID:    req.PriceID,
		Mode:       string(req.Mode),
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+req.Credential)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("checkout endpoint unreachable: %w", err)
	}
	defer resp.Body.Close()

	// A malformed body is tolerated on both paths: failures fall back to
	// the generic message, successes fail on the missing URL below.
	var payload endpointResponse
	_ = json.NewDecoder(resp.Body).Decode(&payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := payload.Error
		if message == "" {
			message = FallbackErrorMessage
		}
		return nil, &RequestError{StatusCode: resp.StatusCode, Message: message}
	}

	if payload.URL == "" {
		return nil, ErrNoRedirectURL
	}

	return &Session{URL: payload.URL}, nil
}
