package reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"pastamakers/internal/jsonutil"
)

// DefaultBaseURL is the public reservation API the showcase talks to.
const DefaultBaseURL = "https://striveschool-api.herokuapp.com/api"

const (
	resourcePath    = "/reservation"
	requestIDHeader = "X-Request-ID"
	maxErrorBody    = 2048
)

// ErrTransport marks failures where no HTTP response was received.
var ErrTransport = errors.New("transport failure")

// StatusError is returned when the API answers with a non-2xx status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("reservation %s: unexpected status %d", e.Op, e.StatusCode)
}

// Service is the reservation API as seen by the UI.
type Service interface {
	Create(ctx context.Context, d Draft) error
	List(ctx context.Context) ([]StoredReservation, error)
}

// Client calls the remote reservation endpoint. Every call is attempted once.
type Client struct {
	baseURL string
	http    *http.Client
	tracer  oteltrace.Tracer
	log     zerolog.Logger
}

var _ Service = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. The default sets no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTracer sets the tracer used for request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) {
		if t != nil {
			c.tracer = t
		}
	}
}

// WithLogger sets the logger request failures are written to.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// NewClient creates a client rooted at baseURL (DefaultBaseURL when blank).
func NewClient(baseURL string, opts ...Option) *Client {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	c := &Client{
		baseURL: trimmed,
		http:    &http.Client{},
		tracer:  noop.NewTracerProvider().Tracer("pastamakers/reservation"),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Create posts the draft as a new reservation.
func (c *Client) Create(ctx context.Context, d Draft) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode reservation: %w", err)
	}

	ctx, span := c.tracer.Start(ctx, "reservation.create")
	defer span.End()

	res, err := c.do(ctx, span, "create", http.MethodPost, bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// List fetches every stored reservation in the order the API returns them.
func (c *Client) List(ctx context.Context) ([]StoredReservation, error) {
	ctx, span := c.tracer.Start(ctx, "reservation.list")
	defer span.End()

	res, err := c.do(ctx, span, "list", http.MethodGet, nil)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	list, err := jsonutil.DecodeArrayAllowEmpty[StoredReservation](res.Body, "decode reservations")
	if err != nil {
		c.fail(span, "list", "", err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("pastamakers.reservation.count", len(list)))
	return list, nil
}

// do sends one request and returns the response only when its status is 2xx.
// The caller closes the body.
func (c *Client) do(ctx context.Context, span oteltrace.Span, op, method string, body io.Reader) (*http.Response, error) {
	url := c.baseURL + resourcePath
	requestID := uuid.NewString()
	span.SetAttributes(
		attribute.String("http.request.method", method),
		attribute.String("url.full", url),
		attribute.String("pastamakers.request_id", requestID),
	)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		err = fmt.Errorf("reservation %s: build request: %w", op, err)
		c.fail(span, op, requestID, err)
		return nil, err
	}
	req.Header.Set(requestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("op", op).Str("request_id", requestID).Str("url", url).Msg("sending request")
	res, err := c.http.Do(req)
	if err != nil {
		err = fmt.Errorf("reservation %s: %w: %w", op, ErrTransport, err)
		c.fail(span, op, requestID, err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		res.Body.Close()
		err := &StatusError{Op: op, StatusCode: res.StatusCode, Body: strings.TrimSpace(string(raw))}
		c.fail(span, op, requestID, err)
		return nil, err
	}
	c.log.Debug().Str("op", op).Str("request_id", requestID).Int("status", res.StatusCode).Msg("request ok")
	return res, nil
}

func (c *Client) fail(span oteltrace.Span, op, requestID string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	ev := c.log.Error().Err(err).Str("op", op)
	if requestID != "" {
		ev = ev.Str("request_id", requestID)
	}
	var se *StatusError
	if errors.As(err, &se) {
		ev = ev.Int("status", se.StatusCode).Str("body", se.Body)
	}
	ev.Msg("reservation request failed")
}
