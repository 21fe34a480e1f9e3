package cebl

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ojadeyemi/cebl-sdk/internal/logging"
	"github.com/ojadeyemi/cebl-sdk/internal/metrics"
)

// Config controls how the client reaches the CEBL stats API.
type Config struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
	Metrics    *metrics.Recorder
}

// Client fetches CEBL data and normalizes it into flat records. It holds no
// cross-call state, so a single instance is safe for concurrent use.
type Client struct {
	baseURL  string
	registry *registry
	gateway  *gateway
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// New constructs a client. A missing API key is a configuration error and is
// reported before any network call is attempted.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	return &Client{
		baseURL:  normalizeBaseURL(cfg.BaseURL),
		registry: defaultRegistry,
		gateway:  newGateway(resolveHTTPClient(cfg.HTTPClient), cfg.APIKey),
		logger:   cfg.Logger,
		metrics:  cfg.Metrics,
	}, nil
}

// GamesOptions filters a season's game listing.
type GamesOptions struct {
	// TeamName matches a team's full or short English name, case-insensitively.
	TeamName string
}

// PlayerStatisticsOptions refines a player statistics call.
type PlayerStatisticsOptions struct {
	CareerOnly  bool
	Competition string // CompetitionRegular or CompetitionFinals
}

// AggregatedOptions refines an aggregated player statistics call.
type AggregatedOptions struct {
	Mode        string // defaults to ModeTotals
	Competition string // CompetitionRegular or CompetitionPlayoffs
	Segment     string // SegmentEast, SegmentWest, SegmentHome, SegmentAway
	TeamName    string
}

// TeamAggregatedOptions refines an aggregated team statistics call.
type TeamAggregatedOptions struct {
	Competition string
	Segment     string
}

// Games lists a season's games, optionally filtered to one team. An unknown
// team name fails with TeamNotFoundError rather than silently returning the
// unfiltered listing.
func (c *Client) Games(ctx context.Context, year string, opts GamesOptions) ([]GameRecord, error) {
	query := map[string]string{"team_id": Unset}
	if opts.TeamName != "" {
		id, err := c.teamID(ctx, opts.TeamName, year)
		if err != nil {
			return nil, err
		}
		query["team_id"] = strconv.Itoa(id)
	}

	raw, err := c.list(ctx, endpointGames, map[string]string{"year": year}, query)
	if err != nil {
		return nil, err
	}
	records, err := normalizeGames(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointGames, len(records))
	return records, nil
}

// Teams lists the teams registered for a season.
func (c *Client) Teams(ctx context.Context, year string) ([]TeamRecord, error) {
	raw, err := c.list(ctx, endpointTeams, map[string]string{"year": year}, nil)
	if err != nil {
		return nil, err
	}
	records, err := normalizeTeams(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointTeams, len(records))
	return records, nil
}

// TeamRoster lists a team's roster for a season. The team is identified by
// its full or short English name.
func (c *Client) TeamRoster(ctx context.Context, teamName, year string) ([]RosterEntry, error) {
	id, err := c.teamID(ctx, teamName, year)
	if err != nil {
		return nil, err
	}

	pathArgs := map[string]string{"team_id": strconv.Itoa(id), "year": year}
	raw, err := c.list(ctx, endpointTeamRoster, pathArgs, nil)
	if err != nil {
		return nil, err
	}
	records, err := normalizeRoster(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointTeamRoster, len(records))
	return records, nil
}

// PlayerStatistics fetches statistics for one player. Mode is ModePerGame or
// ModeTotals.
func (c *Client) PlayerStatistics(ctx context.Context, playerID int, mode string, opts PlayerStatisticsOptions) ([]PlayerRecord, error) {
	query := map[string]string{
		"mode":        mode,
		"career_only": strconv.FormatBool(opts.CareerOnly),
		"competition": orUnset(opts.Competition),
	}
	pathArgs := map[string]string{"player_id": strconv.Itoa(playerID)}

	raw, err := c.list(ctx, endpointPlayerStatistics, pathArgs, query)
	if err != nil {
		return nil, err
	}
	records, err := normalizePlayers(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointPlayerStatistics, len(records))
	return records, nil
}

// PlayerStatisticsAggregated fetches league-wide player statistics for a
// season. Mode defaults to ModeTotals.
func (c *Client) PlayerStatisticsAggregated(ctx context.Context, season string, opts AggregatedOptions) ([]PlayerRecord, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeTotals
	}

	query := map[string]string{
		"season":      season,
		"mode":        mode,
		"competition": orUnset(opts.Competition),
		"segment":     orUnset(opts.Segment),
		"team_id":     Unset,
	}
	if opts.TeamName != "" {
		id, err := c.teamID(ctx, opts.TeamName, season)
		if err != nil {
			return nil, err
		}
		query["team_id"] = strconv.Itoa(id)
	}

	raw, err := c.list(ctx, endpointPlayersAggregated, nil, query)
	if err != nil {
		return nil, err
	}
	records, err := normalizePlayers(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointPlayersAggregated, len(records))
	return records, nil
}

// TeamStatisticsAggregated fetches league-wide team statistics for a season.
func (c *Client) TeamStatisticsAggregated(ctx context.Context, season, mode string, opts TeamAggregatedOptions) ([]TeamRecord, error) {
	query := map[string]string{
		"season":      season,
		"mode":        mode,
		"competition": orUnset(opts.Competition),
		"segment":     orUnset(opts.Segment),
	}

	raw, err := c.list(ctx, endpointTeamsAggregated, nil, query)
	if err != nil {
		return nil, err
	}
	records, err := normalizeTeams(raw)
	if err != nil {
		return nil, err
	}
	c.metrics.RecordRecords(endpointTeamsAggregated, len(records))
	return records, nil
}

// list resolves the endpoint, builds the request and fetches the raw record
// objects, recording one metrics attempt per network call.
func (c *Client) list(ctx context.Context, endpointName string, pathArgs, query map[string]string) ([]map[string]any, error) {
	ep, err := c.registry.resolve(endpointName)
	if err != nil {
		return nil, err
	}
	req, err := buildRequest(c.baseURL, ep, pathArgs, query)
	if err != nil {
		return nil, err
	}

	var raw []map[string]any
	start := time.Now()
	err = c.gateway.fetch(ctx, ep.Name, req, &raw)
	c.metrics.RecordRequest(ep.Name, time.Since(start), err)
	if err != nil {
		logging.Error(c.logger, "cebl request failed", err,
			logging.FieldEndpoint, ep.Name,
			logging.FieldURL, req.fullURL(),
		)
		return nil, err
	}

	logging.Debug(c.logger, "cebl request ok",
		logging.FieldEndpoint, ep.Name,
		logging.FieldCount, len(raw),
	)
	return raw, nil
}

// teamID resolves a team's full or short English name to its id via the
// season's team listing.
func (c *Client) teamID(ctx context.Context, teamName, year string) (int, error) {
	teams, err := c.Teams(ctx, year)
	if err != nil {
		return 0, err
	}
	for _, team := range teams {
		if team.ID == nil {
			continue
		}
		if matchesName(team.Name, teamName) || matchesName(team.ShortName, teamName) {
			return *team.ID, nil
		}
	}
	return 0, &TeamNotFoundError{Team: teamName, Year: year}
}

func matchesName(field *string, name string) bool {
	return field != nil && strings.EqualFold(*field, name)
}

func orUnset(v string) string {
	if v == "" {
		return Unset
	}
	return v
}
