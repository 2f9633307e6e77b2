package soap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired is returned without contacting the server when the bearer
// token is a JWT whose exp claim has passed.
var ErrTokenExpired = errors.New("soap: bearer token expired")

// StatusError reports an HTTP status that cannot carry a SOAP response.
// Status 200 and 500 (faults) are returned to the caller as bodies.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("soap: unexpected HTTP status %s", e.Status)
}

// HTTPTransport posts SOAP envelopes to a single endpoint. It is safe for
// concurrent use.
type HTTPTransport struct {
	endpoint  string
	client    *http.Client
	version   SOAPVersion
	username  string
	password  string
	token     string
	userAgent string
	now       func() time.Time
}

// TransportOption configures an HTTPTransport.
type TransportOption func(*HTTPTransport)

// WithHTTPClient sets the client used for requests.
func WithHTTPClient(c *http.Client) TransportOption {
	return func(t *HTTPTransport) { t.client = c }
}

// WithBasicAuth authenticates with a username and password.
func WithBasicAuth(username, password string) TransportOption {
	return func(t *HTTPTransport) { t.username, t.password = username, password }
}

// WithBearerToken authenticates with an OAuth access token.
func WithBearerToken(token string) TransportOption {
	return func(t *HTTPTransport) { t.token = token }
}

// WithSOAPVersion selects the Content-Type of requests. Defaults to SOAP11.
func WithSOAPVersion(v SOAPVersion) TransportOption {
	return func(t *HTTPTransport) { t.version = v }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) TransportOption {
	return func(t *HTTPTransport) { t.userAgent = ua }
}

// NewHTTPTransport creates a transport for endpoint.
func NewHTTPTransport(endpoint string, opts ...TransportOption) *HTTPTransport {
	t := &HTTPTransport{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 100 * time.Second},
		version:  SOAP11,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send posts request and returns the response body.
func (t *HTTPTransport) Send(ctx context.Context, request []byte) ([]byte, error) {
	if err := t.checkToken(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(request))
	if err != nil {
		return nil, fmt.Errorf("soap: build request: %w", err)
	}
	req.Header.Set("Content-Type", t.version.ContentType())
	req.Header.Set("Accept", "text/xml")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	switch {
	case t.token != "":
		req.Header.Set("Authorization", "Bearer "+t.token)
	case t.username != "":
		req.SetBasicAuth(t.username, t.password)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxSOAPBodySize))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSOAPBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("soap: read response: %w", err)
	}
	if len(body) > maxSOAPBodySize {
		return nil, fmt.Errorf("soap: response exceeds %d bytes", maxSOAPBodySize)
	}
	return body, nil
}

// checkToken rejects a JWT bearer token that has already expired. Opaque
// tokens are passed through untouched.
func (t *HTTPTransport) checkToken() error {
	if t.token == "" {
		return nil
	}
	parsed, _, err := jwt.NewParser().ParseUnverified(t.token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	if !exp.After(t.now()) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, exp.UTC().Format(time.RFC3339))
	}
	return nil
}
