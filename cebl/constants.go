package cebl

import "time"

const (
	defaultBaseURL     = "https://api.data.cebl.ca"
	defaultHTTPTimeout = 20 * time.Second

	headerAPIKey    = "X-Api-Key"
	acceptValue     = "application/json, text/plain, */*"
	originValue     = "https://cebl-stats-hub.web.app"
	userAgentValue  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// Registered endpoint names.
const (
	endpointGames             = "games"
	endpointTeams             = "teams"
	endpointPlayerStatistics  = "player_statistics"
	endpointPlayersAggregated = "players_statistics_aggregated"
	endpointTeamRoster        = "team_roster"
	endpointTeamsAggregated   = "teams_statistics_aggregated"
)

// Statistic aggregation modes accepted by the statistics endpoints.
const (
	ModePerGame = "PER_GAME"
	ModeTotals  = "TOTALS"
)

// Competition phase filters. Finals applies to per-player statistics,
// Playoffs to the aggregated endpoints.
const (
	CompetitionRegular  = "REGULAR"
	CompetitionFinals   = "FINALS"
	CompetitionPlayoffs = "PLAYOFFS"
)

// Conference and venue segments for aggregated player statistics.
const (
	SegmentEast = "EAST"
	SegmentWest = "WEST"
	SegmentHome = "HOME"
	SegmentAway = "AWAY"
)

// StatusComplete is the game status the upstream reports once a game has
// finished and its live-stats payload is final.
const StatusComplete = "COMPLETE"
