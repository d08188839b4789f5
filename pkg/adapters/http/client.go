package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/frontier/pkg/domain"
	"github.com/aretw0/frontier/pkg/ports"
)

// SolverClient is a ports.Solver that calls POST {base}/solve.
type SolverClient struct {
	baseURL string
	client  *http.Client
}

var _ ports.Solver = (*SolverClient)(nil)

// ClientOption configures a SolverClient.
type ClientOption func(*SolverClient)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) ClientOption {
	return func(sc *SolverClient) {
		sc.client = c
	}
}

// NewSolverClient returns a client for the solver service at baseURL.
func NewSolverClient(baseURL string, opts ...ClientOption) *SolverClient {
	c := &SolverClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Solve posts req and decodes {explored, path}. Network failures and
// non-2xx answers are reported as domain.ErrSolveRequestFailed.
func (c *SolverClient) Solve(ctx context.Context, req domain.SolveRequest) (domain.SolveResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.SolveResult{}, fmt.Errorf("%w: %w", domain.ErrSolveRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/solve", bytes.NewReader(body))
	if err != nil {
		return domain.SolveResult{}, fmt.Errorf("%w: %w", domain.ErrSolveRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return domain.SolveResult{}, fmt.Errorf("%w: %w", domain.ErrSolveRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return domain.SolveResult{}, fmt.Errorf("%w: status %d: %s", domain.ErrSolveRequestFailed, resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var res domain.SolveResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return domain.SolveResult{}, fmt.Errorf("%w: invalid response: %w", domain.ErrSolveRequestFailed, err)
	}
	if res.Path == nil {
		res.Path = []string{}
	}
	return res, nil
}
