package cebl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// gateway performs authenticated GETs against the stats API. One network
// call per invocation, no retries, no caching.
type gateway struct {
	httpClient httpDoer
	headers    map[string]string
}

func newGateway(client httpDoer, apiKey string) *gateway {
	return &gateway{
		httpClient: client,
		headers: map[string]string{
			headerAPIKey: apiKey,
			"Accept":     acceptValue,
			"Origin":     originValue,
			"User-Agent": userAgentValue,
		},
	}
}

// fetch issues the GET described by req and decodes the JSON body into out.
// Failures map onto the package error taxonomy and surface immediately.
func (g *gateway) fetch(ctx context.Context, endpoint string, req request, out any) error {
	full := req.fullURL()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.url, nil)
	if err != nil {
		return err
	}
	httpReq.URL.RawQuery = req.query.Encode()
	for key, val := range g.headers {
		httpReq.Header.Set(key, val)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Endpoint: endpoint, URL: full, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &AuthenticationError{Endpoint: endpoint, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &NotFoundError{Endpoint: endpoint, URL: full}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &UpstreamError{
			Endpoint: endpoint,
			Status:   resp.StatusCode,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("cebl: decoding %s response: %w", endpoint, err)
	}
	return nil
}
