package viacep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// DefaultBaseURL is the public ViaCEP endpoint.
const DefaultBaseURL = "https://viacep.com.br/ws"

const tracerName = "github.com/jask/buscacep/internal/viacep"

// Client performs CEP lookups. One call, one GET; no retries, no caching.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*options)

type options struct {
	http    *http.Client
	timeout time.Duration
}

// WithHTTPClient sets the client used for requests. A nil client is ignored.
// The client is copied, so later options never modify the caller's value.
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		if c != nil {
			o.http = c
		}
	}
}

// WithTimeout sets a whole-request timeout. Zero keeps the HTTP client's own.
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// New returns a client for baseURL (e.g. DefaultBaseURL).
func New(baseURL string, opts ...Option) *Client {
	o := options{http: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}}
	for _, opt := range opts {
		opt(&o)
	}
	hc := *o.http
	if o.timeout > 0 {
		hc.Timeout = o.timeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &hc,
	}
}

// Lookup fetches {baseURL}/{code}/json and decodes the address.
func (c *Client) Lookup(ctx context.Context, code string) (Address, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "viacep.lookup")
	defer span.End()
	span.SetAttributes(attribute.String("cep", code))

	addr, err := c.lookup(ctx, code)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, KindOf(err).String())
		return Address{}, err
	}
	span.SetStatus(codes.Ok, "")
	return addr, nil
}

func (c *Client) lookup(ctx context.Context, code string) (Address, error) {
	reqURL := fmt.Sprintf("%s/%s/json", c.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Address{}, &Error{Kind: KindNetwork, Code: code, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Address{}, &Error{Kind: KindNetwork, Code: code, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Address{}, &Error{Kind: KindNetwork, Code: code, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Address{}, &Error{Kind: KindStatus, Code: code, Status: resp.StatusCode}
	}

	var env *envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return Address{}, &Error{Kind: KindDecode, Code: code, Status: resp.StatusCode, Err: err}
	}
	if env == nil {
		return Address{}, &Error{Kind: KindDecode, Code: code, Status: resp.StatusCode, Err: errors.New("empty body")}
	}
	if env.notFound() {
		return Address{}, &Error{Kind: KindNotFound, Code: code, Status: resp.StatusCode}
	}
	return env.Address, nil
}
