// Package providers implements the outbound HTTP data providers: weather,
// local time, exchange rates, points of interest and geocoding.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
)

const maxBodyBytes = 1 << 20

// Options tunes the shared HTTP behaviour of every provider.
type Options struct {
	Timeout        time.Duration
	MaxRetries     int
	UserAgent      string
	InitialBackoff time.Duration
	HTTPClient     *http.Client
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	if o.UserAgent == "" {
		o.UserAgent = "flyworld/1.0"
	}
	if o.InitialBackoff <= 0 {
		o.InitialBackoff = 200 * time.Millisecond
	}
	if o.HTTPClient == nil {
		o.HTTPClient = &http.Client{Timeout: o.Timeout}
	}
	return o
}

// client performs GET requests returning JSON, retrying transient failures
// (timeouts, network errors, 429 and 5xx) with exponential backoff.
type client struct {
	name    string
	opts    Options
	limiter *rate.Limiter
	tracer  trace.Tracer
}

func newClient(name string, opts Options, limiter *rate.Limiter) *client {
	return &client{
		name:    name,
		opts:    opts.withDefaults(),
		limiter: limiter,
		tracer:  otel.Tracer("flyworld/providers"),
	}
}

// getJSON fetches endpoint and decodes the body into v.
func (c *client) getJSON(ctx context.Context, endpoint string, v any) (err error) {
	ctx, span := c.tracer.Start(ctx, "provider."+c.name, trace.WithSpanKind(trace.SpanKindClient))
	start := time.Now()
	defer func() {
		kind := "ok"
		if err != nil {
			kind = domain.ErrorKind(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, kind)
		}
		metrics.ProviderRequests.WithLabelValues(c.name, kind).Inc()
		metrics.ProviderDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())
		span.End()
	}()

	var body []byte
	attempts := 0
	op := func() error {
		attempts++
		b, err := c.fetch(ctx, endpoint)
		if err != nil {
			if retryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		body = b
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.InitialBackoff
	b.MaxElapsedTime = 0
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(max(c.opts.MaxRetries, 0))), ctx)

	err = backoff.Retry(op, policy)
	span.SetAttributes(attribute.Int("provider.attempts", attempts))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, domain.ErrProviderTimeout) {
			err = fmt.Errorf("%s: %w", c.name, domain.ErrProviderTimeout)
		}
		return err
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%s: %w: %v", c.name, domain.ErrMalformedPayload, err)
	}
	return nil
}

func (c *client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.classify(err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return nil, c.classify(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, c.classify(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.ProviderStatusError{
			Provider: c.name,
			Code:     resp.StatusCode,
			Body:     strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

func (c *client) classify(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s: %w: %v", c.name, domain.ErrProviderTimeout, err)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%s: %w: %v", c.name, domain.ErrProviderUnavailable, err)
	}
}

func retryable(err error) bool {
	var se *domain.ProviderStatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
			http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	}
	return errors.Is(err, domain.ErrProviderTimeout) || errors.Is(err, domain.ErrProviderUnavailable)
}
