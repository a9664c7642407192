// Package recommendation calls the external recommendation service over HTTP.
package recommendation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/core/ports"
	"b2better/internal/pkg/errs"
)

const (
	ServiceName    = "recommendation-service"
	DefaultTimeout = 5 * time.Second

	maxResponseSize = 1 << 20
)

var _ ports.RecommendationClient = &HTTPClient{}

// HTTPClient is safe for concurrent use. It is built once and shared.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// Recommendations issues GET {base}/recommendations/{userID}?limit=n and
// returns the body untouched. The call is never retried.
func (c *HTTPClient) Recommendations(
	ctx context.Context,
	userID kernel.UUID,
	limit int,
) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/recommendations/%s?limit=%s",
		c.baseURL, url.PathEscape(userID.String()), strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errs.NewUpstreamErrorWithCause(ServiceName, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errs.NewUpstreamErrorWithCause(ServiceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseSize))
		return nil, errs.NewUpstreamError(ServiceName, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errs.NewUpstreamErrorWithCause(ServiceName, err)
	}
	if !json.Valid(body) {
		return nil, errs.NewUpstreamErrorWithCause(ServiceName, errs.ErrValueIsInvalid)
	}

	return json.RawMessage(body), nil
}
