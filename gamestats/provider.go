package gamestats

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ojadeyemi/cebl-sdk/cebl"
	"github.com/ojadeyemi/cebl-sdk/internal/logging"
	"github.com/ojadeyemi/cebl-sdk/internal/metrics"
)

const (
	defaultDataBaseURL = "https://fibalivestats.dcd.shared.geniussports.com/data"
	defaultHTTPTimeout = 20 * time.Second

	endpointGameData = "game_data"
)

// Config controls how the provider reaches the live-stats data host.
type Config struct {
	DataBaseURL string
	HTTPClient  *http.Client
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Provider fetches a game's live-stats payload. The data host is public, so
// no API key is attached; the game id is carried in the stats URL the CEBL
// API hands out per game.
type Provider struct {
	dataBaseURL string
	httpClient  httpDoer
	headers     map[string]string
	logger      *slog.Logger
	metrics     *metrics.Recorder
}

// BadStatsURLError reports a stats URL the game id could not be extracted
// from.
type BadStatsURLError struct {
	URL string
}

func (e *BadStatsURLError) Error() string {
	return fmt.Sprintf("gamestats: cannot extract game id from stats url %q", e.URL)
}

func NewProvider(cfg Config) *Provider {
	baseURL := cfg.DataBaseURL
	if baseURL == "" {
		baseURL = defaultDataBaseURL
	}

	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &Provider{
		dataBaseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient:  doer,
		headers: map[string]string{
			"Accept":             "application/json, text/plain, */*",
			"User-Agent":         "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			"Sec-Ch-Ua":          `"Not/A)Brand";v="8", "Chromium";v="126", "Google Chrome";v="126"`,
			"Sec-Ch-Ua-Mobile":   "?0",
			"Sec-Ch-Ua-Platform": `"Windows"`,
		},
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// GameData fetches the detailed payload for one game, identified by the
// stats URL from a prior game-listing call.
func (p *Provider) GameData(ctx context.Context, statsURL string) (*GamePayload, error) {
	gameID, err := gameIDFromStatsURL(statsURL)
	if err != nil {
		return nil, err
	}
	dataURL := fmt.Sprintf("%s/%s/data.json", p.dataBaseURL, gameID)

	var payload GamePayload
	start := time.Now()
	err = p.fetch(ctx, dataURL, &payload)
	p.metrics.RecordRequest(endpointGameData, time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "game data request failed", err,
			logging.FieldURL, dataURL,
			logging.FieldGameID, gameID,
		)
		return nil, err
	}

	logging.Debug(p.logger, "game data request ok", logging.FieldGameID, gameID)
	return &payload, nil
}

// gameIDFromStatsURL pulls the trailing numeric segment out of a stats URL
// such as https://fibalivestats.dcd.shared.geniussports.com/u/CEBL/2400360/.
func gameIDFromStatsURL(statsURL string) (string, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(statsURL), "/")
	idx := strings.LastIndex(trimmed, "/")
	if idx < 0 {
		return "", &BadStatsURLError{URL: statsURL}
	}
	id := trimmed[idx+1:]
	if id == "" || !isDigits(id) {
		return "", &BadStatsURLError{URL: statsURL}
	}
	return id, nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// fetch issues one GET against the data host, mapping failures onto the cebl
// error taxonomy.
func (p *Provider) fetch(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	for key, val := range p.headers {
		req.Header.Set(key, val)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return &cebl.TransportError{Endpoint: endpointGameData, URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return &cebl.AuthenticationError{Endpoint: endpointGameData, Status: resp.StatusCode}
	case resp.StatusCode == http.StatusNotFound:
		return &cebl.NotFoundError{Endpoint: endpointGameData, URL: rawURL}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &cebl.UpstreamError{
			Endpoint: endpointGameData,
			Status:   resp.StatusCode,
			Body:     strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("gamestats: decoding game data response: %w", err)
	}
	return nil
}
