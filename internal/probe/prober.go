package probe

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/availmon/internal/domain"
)

// Outcome classifies a single probe. Exactly one of three shapes:
// Up; Down with Timeout set (expected, not worth logging); or Down with Err
// set (transport trouble the operator may want to investigate). A probe never
// fails as such, it only classifies.
type Outcome struct {
	Up      bool
	Status  int
	Timeout bool
	Err     error
}

// Prober issues one liveness probe for a request spec.
type Prober interface {
	Check(ctx context.Context, spec domain.RequestSpec) Outcome
}

// HTTPProber probes over HTTP with a per-request timeout. The client is
// shared across all probes and cycles so connections get reused; the
// timeout lives on the request context, not on the client.
type HTTPProber struct {
	Client  *http.Client
	Timeout time.Duration
}

func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &HTTPProber{
		Client: &http.Client{
			// A redirect answer is itself the probe result; anything outside
			// [200,300) counts as down, so never chase Location.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		Timeout: timeout,
	}
}

// Check issues exactly one request: no retries, no backoff. Up iff the
// response status is in [200, 300).
func (p *HTTPProber) Check(ctx context.Context, spec domain.RequestSpec) Outcome {
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	var body io.Reader
	if spec.Body != "" {
		body = strings.NewReader(spec.Body)
	}
	req, err := http.NewRequestWithContext(cctx, spec.Method, spec.URL, body)
	if err != nil {
		return Outcome{Err: err}
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return Outcome{Timeout: true}
		}
		if errors.Is(err, context.Canceled) {
			// Shutdown raced the request; nobody consumes this cycle.
			return Outcome{}
		}
		return Outcome{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16)) // keep the connection reusable

	return Outcome{
		Up:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
