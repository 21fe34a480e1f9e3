// ceblctl is a one-shot CLI over the SDK: it runs a single query against the
// CEBL stats API (or the live-stats data host) and prints the result as JSON.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	svg "github.com/ajstarks/svgo"
	flag "github.com/spf13/pflag"

	"github.com/ojadeyemi/cebl-sdk/cebl"
	"github.com/ojadeyemi/cebl-sdk/court"
	"github.com/ojadeyemi/cebl-sdk/gamestats"
	"github.com/ojadeyemi/cebl-sdk/internal/config"
	"github.com/ojadeyemi/cebl-sdk/internal/logging"
	"github.com/ojadeyemi/cebl-sdk/internal/metrics"
)

const appVersion = "dev"

var (
	year        = flag.String("year", "2024", "season year")
	team        = flag.String("team", "", "team full or short name")
	player      = flag.String("player", "", "player name, as printed in shot records")
	playerID    = flag.Int("player-id", 0, "player id for player-stats")
	mode        = flag.String("mode", cebl.ModeTotals, "statistics mode: PER_GAME or TOTALS")
	competition = flag.String("competition", "", "competition filter: REGULAR, FINALS or PLAYOFFS")
	segment     = flag.String("segment", "", "segment filter, e.g. HOME, AWAY, EAST, WEST")
	careerOnly  = flag.Bool("career-only", false, "career statistics only (player-stats)")
	statsURL    = flag.String("stats-url", "", "per-game stats url from a games listing")
	courtColor  = flag.String("court-color", "", "court stroke color (court)")
	outerLines  = flag.Bool("outer-lines", false, "draw court boundary lines (court)")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: ceblctl [flags] <command>\n\n")
	fmt.Fprintf(os.Stderr, "commands: games, teams, roster, player-stats, player-stats-agg, team-stats-agg, game-data, shots, court\n\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "ceblctl",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		logging.Error(logger, "metrics setup failed", err)
		os.Exit(1)
	}
	defer shutdownMetrics(context.Background())

	if promHandler != nil {
		go serveMetrics(cfg.Metrics.Port, promHandler, logger)
	}

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	client, err := cebl.New(cebl.Config{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    rec,
	})
	if err != nil {
		logging.Error(logger, "client setup failed", err)
		os.Exit(1)
	}

	provider := gamestats.NewProvider(gamestats.Config{
		DataBaseURL: cfg.DataBaseURL,
		HTTPClient:  httpClient,
		Logger:      logger,
		Metrics:     rec,
	})

	out, err := run(ctx, flag.Arg(0), client, provider)
	if err != nil {
		logging.Error(logger, "command failed", err)
		os.Exit(1)
	}
	if out == nil {
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logging.Error(logger, "encoding output failed", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, client *cebl.Client, provider *gamestats.Provider) (any, error) {
	switch command {
	case "games":
		return client.Games(ctx, *year, cebl.GamesOptions{TeamName: *team})
	case "teams":
		return client.Teams(ctx, *year)
	case "roster":
		if *team == "" {
			return nil, fmt.Errorf("roster requires --team")
		}
		return client.TeamRoster(ctx, *team, *year)
	case "player-stats":
		if *playerID == 0 {
			return nil, fmt.Errorf("player-stats requires --player-id")
		}
		return client.PlayerStatistics(ctx, *playerID, *mode, cebl.PlayerStatisticsOptions{
			CareerOnly:  *careerOnly,
			Competition: *competition,
		})
	case "player-stats-agg":
		return client.PlayerStatisticsAggregated(ctx, *year, cebl.AggregatedOptions{
			Mode:        *mode,
			Competition: *competition,
			Segment:     *segment,
			TeamName:    *team,
		})
	case "team-stats-agg":
		return client.TeamStatisticsAggregated(ctx, *year, *mode, cebl.TeamAggregatedOptions{
			Competition: *competition,
			Segment:     *segment,
		})
	case "game-data":
		if *statsURL == "" {
			return nil, fmt.Errorf("game-data requires --stats-url")
		}
		return provider.GameData(ctx, *statsURL)
	case "shots":
		return runShots(ctx, client, provider)
	case "court":
		drawCourt(os.Stdout)
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown command %q", command)
	}
}

// runShots fetches shot records: a single game when --stats-url is given,
// otherwise a season's worth for --team (optionally narrowed to --player).
func runShots(ctx context.Context, client *cebl.Client, provider *gamestats.Provider) (any, error) {
	if *statsURL != "" {
		payload, err := provider.GameData(ctx, *statsURL)
		if err != nil {
			return nil, err
		}
		shots := gamestats.ExtractShots(payload)
		if *player != "" {
			shots = gamestats.FilterByPlayer(shots, *player)
		}
		return shots, nil
	}

	if *team == "" {
		return nil, fmt.Errorf("shots requires --team or --stats-url")
	}
	if *player != "" {
		return provider.PlayerSeasonShots(ctx, client, *year, *team, *player)
	}
	return provider.TeamSeasonShots(ctx, client, *year, *team)
}

// drawCourt writes the half-court line work as an SVG document, flipped so
// the baseline sits at the bottom of the image.
func drawCourt(w io.Writer) {
	drawing := svg.New(w)
	drawing.Start(500, 470)
	drawing.Gtransform("translate(0,470) scale(1,-1)")
	court.Draw(court.NewSVGCanvas(drawing), court.Options{
		Color:      *courtColor,
		OuterLines: *outerLines,
	})
	drawing.Gend()
	drawing.End()
}

func serveMetrics(port string, handler http.Handler, logger *slog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	if err := http.ListenAndServe(":"+port, mux); err != nil && err != http.ErrServerClosed {
		logging.Error(logger, "metrics server stopped", err)
	}
}
