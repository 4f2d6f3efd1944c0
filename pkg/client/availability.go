package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"roombook/pkg/model"
)

var (
	// ErrTimeout means the authority accepted the connection but did
	// not answer before the deadline.
	ErrTimeout = errors.New("availability service did not respond before the timeout")

	// ErrUnreachable means the connection itself failed.
	ErrUnreachable = errors.New("cannot reach availability service")
)

// UpstreamStatusError is returned when the authority answered with a
// non-200 status. Body carries the upstream payload for diagnostics.
type UpstreamStatusError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("availability service returned status %d", e.StatusCode)
}

// AvailabilityClient talks to the availability authority. Check uses
// the long timeout, Healthy the short probe timeout.
type AvailabilityClient struct {
	httpClient   *HttpClient
	checkTimeout time.Duration
	probeTimeout time.Duration
}

func NewAvailabilityClient(baseURL string, checkTimeout, probeTimeout time.Duration) *AvailabilityClient {
	return &AvailabilityClient{
		httpClient:   NewHttpClient(baseURL),
		checkTimeout: checkTimeout,
		probeTimeout: probeTimeout,
	}
}

// Check sends the normalized availability query and decodes the
// decision. A 400 from the authority still carries a decision body and
// is surfaced as UpstreamStatusError by the same rule as any other
// non-200: the gateway validates its own input first, so a malformed
// query at this point is an integration fault, not a user error.
func (c *AvailabilityClient) Check(ctx context.Context, req *model.AvailabilityRequest) (*model.AvailabilityResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, c.checkTimeout)
	defer cancel()

	resp, err := c.httpClient.POST(ctx, "/api/v1/availability/check", req)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamStatusError{
			StatusCode: resp.StatusCode,
			Body:       string(resp.Body),
		}
	}

	var decision model.AvailabilityResponse
	if err := resp.DecodeJSON(&decision); err != nil {
		return nil, fmt.Errorf("failed to decode availability response: %w", err)
	}
	return &decision, nil
}

// Healthy probes the authority's health endpoint. It reports a bare
// boolean and deliberately swallows all error detail.
func (c *AvailabilityClient) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	resp, err := c.httpClient.GET(ctx, "/health")
	if err != nil {
		return false
	}
	return resp.StatusCode == http.StatusOK
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if urlErr.Timeout() {
			return ErrTimeout
		}
		var opErr *net.OpError
		if errors.As(err, &opErr) {
			return fmt.Errorf("%w: %v", ErrUnreachable, opErr)
		}
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}
