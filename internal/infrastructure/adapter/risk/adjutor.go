package risk

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	coreport "github.com/lendmark/demo-credit/internal/domain/port/core"
)

const defaultTimeout = 10 * time.Second

// AdjutorClient checks identities against the Adjutor karma blacklist.
// The karma endpoint answers 200 with a record for a blacklisted identity
// and 404 for a clean one.
type AdjutorClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  coreport.Logger
}

// compile-time check against the domain port
var _ coreport.RiskChecker = (*AdjutorClient)(nil)

// NewAdjutorClient creates a karma blacklist client
func NewAdjutorClient(baseURL, apiKey string, timeout time.Duration, logger coreport.Logger) *AdjutorClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &AdjutorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// IsBlacklisted reports whether the identity has a karma record
func (c *AdjutorClient) IsBlacklisted(ctx context.Context, identity string) (bool, error) {
	endpoint := fmt.Sprintf("%s/verification/karma/%s", c.baseURL, url.PathEscape(identity))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build karma request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("karma lookup: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	switch resp.StatusCode {
	case http.StatusOK:
		c.logger.Warn("Identity found on karma blacklist", map[string]any{
			"identity": identity,
		})
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("karma lookup: unexpected status %d", resp.StatusCode)
	}
}

// NoopChecker approves every identity. Used when the risk check is disabled.
type NoopChecker struct{}

// IsBlacklisted always reports a clean identity
func (NoopChecker) IsBlacklisted(ctx context.Context, identity string) (bool, error) {
	return false, nil
}
