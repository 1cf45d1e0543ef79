package api

import (
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"

	apierrors "github.com/edalrymple/horizon/internal/errors"
	"github.com/edalrymple/horizon/internal/models"
)

// Params holds optional query parameters for a catalog operation. Entries
// with a nil value are dropped before the request is sent, mirroring the
// absent-parameter semantics of the API.
type Params map[string]any

// get issues a single GET against the API host. The query always carries the
// client's api_key; every non-nil entry of params is added on top. A 200
// response updates the rate-limit bookkeeping and is parsed as JSON; any
// other status is classified into a StatusError.
func (c *Client) get(path string, params Params) (*Response, error) {
	query := url.Values{}
	query.Set("api_key", c.apiKey)

	// Sorted for a stable query string; the API does not care about order.
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := params[k]
		if v == nil {
			continue
		}
		query.Set(k, formatParam(v))
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimPrefix(path, "/"), query.Encode())

	req, err := fhttp.NewRequest(fhttp.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apierrors.NewNetworkError(endpoint, err)
	}

	if resp.StatusCode != 200 {
		return nil, apierrors.NewStatusError(resp.StatusCode, resp.Header, string(body))
	}

	remaining := resp.Header.Get(models.RateLimitHeader)
	if remaining == "" {
		return nil, apierrors.NewMissingHeaderError(models.RateLimitHeader)
	}
	c.setRateLimitRemaining(remaining)

	return ParseResponse(body)
}

// formatParam renders a query parameter value the way the API expects.
func formatParam(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "True"
		}
		return "False"
	case float64:
		// Trailing zeros trimmed so 1.5 stays "1.5" and 100.0 becomes "100".
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", t), "0"), ".")
	default:
		return fmt.Sprintf("%v", t)
	}
}
