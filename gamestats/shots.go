package gamestats

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/ojadeyemi/cebl-sdk/cebl"
)

// Home and away team ids as keyed in the live-stats payload.
const (
	HomeTeam = 1
	AwayTeam = 2
)

const (
	actionTwoPoint   = "2pt"
	actionThreePoint = "3pt"
)

// ShotRecord is one field-goal attempt with court position and outcome.
// Records are built transiently while walking a payload and never persisted.
type ShotRecord struct {
	X            float64
	Y            float64
	Made         bool
	Points       int
	Player       string
	PlayerNumber int
	TeamID       int
	TeamName     string
	TeamCode     string
	Period       int
	PeriodType   string
}

// ExtractShots flattens both teams' shot lists into field-goal records.
// Free throws and non-shot entries are excluded. Order is home team first,
// each team's events in payload order.
func ExtractShots(payload *GamePayload) []ShotRecord {
	if payload == nil {
		return nil
	}

	keys := make([]string, 0, len(payload.Teams))
	for key := range payload.Teams {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var records []ShotRecord
	for _, key := range keys {
		team := payload.Teams[key]
		teamID, _ := strconv.Atoi(key)
		for _, ev := range team.Shots {
			points, isFieldGoal := shotPoints(ev.ActionType)
			if !isFieldGoal {
				continue
			}
			records = append(records, ShotRecord{
				X:            ev.X,
				Y:            ev.Y,
				Made:         ev.Result == 1,
				Points:       points,
				Player:       ev.Player,
				PlayerNumber: ev.PlayerNumber,
				TeamID:       teamID,
				TeamName:     team.Name,
				TeamCode:     team.Code,
				Period:       ev.Period,
				PeriodType:   ev.PeriodType,
			})
		}
	}
	return records
}

func shotPoints(actionType string) (int, bool) {
	switch actionType {
	case actionTwoPoint:
		return 2, true
	case actionThreePoint:
		return 3, true
	default:
		return 0, false
	}
}

// FilterByTeam keeps the shots taken by one team. Pure filter, no network.
func FilterByTeam(records []ShotRecord, teamID int) []ShotRecord {
	filtered := make([]ShotRecord, 0, len(records))
	for _, rec := range records {
		if rec.TeamID == teamID {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// FilterByPlayer keeps the shots taken by one player, matched on the exact
// name the payload uses. Pure filter, no network.
func FilterByPlayer(records []ShotRecord, player string) []ShotRecord {
	filtered := make([]ShotRecord, 0, len(records))
	for _, rec := range records {
		if rec.Player == player {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// GamesSource lists a season's games for one team. *cebl.Client satisfies it.
type GamesSource interface {
	Games(ctx context.Context, year string, opts cebl.GamesOptions) ([]cebl.GameRecord, error)
}

var _ GamesSource = (*cebl.Client)(nil)

// TeamSeasonShots collects one team's field-goal attempts across every
// completed game of a season.
func (p *Provider) TeamSeasonShots(ctx context.Context, src GamesSource, year, teamName string) ([]ShotRecord, error) {
	games, err := src.Games(ctx, year, cebl.GamesOptions{TeamName: teamName})
	if err != nil {
		return nil, err
	}

	var all []ShotRecord
	for _, game := range games {
		side, plays := teamSide(game, teamName)
		if !plays || !isComplete(game) || game.StatsURL == nil {
			continue
		}
		payload, err := p.GameData(ctx, *game.StatsURL)
		if err != nil {
			return nil, err
		}
		all = append(all, FilterByTeam(ExtractShots(payload), side)...)
	}
	return all, nil
}

// PlayerSeasonShots collects one player's field-goal attempts across every
// completed game their team played in a season.
func (p *Provider) PlayerSeasonShots(ctx context.Context, src GamesSource, year, teamName, playerName string) ([]ShotRecord, error) {
	shots, err := p.TeamSeasonShots(ctx, src, year, teamName)
	if err != nil {
		return nil, err
	}
	return FilterByPlayer(shots, playerName), nil
}

func teamSide(game cebl.GameRecord, teamName string) (int, bool) {
	switch {
	case nameEquals(game.HomeTeamName, teamName):
		return HomeTeam, true
	case nameEquals(game.AwayTeamName, teamName):
		return AwayTeam, true
	}
	return 0, false
}

func isComplete(game cebl.GameRecord) bool {
	return game.Status != nil && *game.Status == cebl.StatusComplete
}

func nameEquals(field *string, name string) bool {
	return field != nil && strings.EqualFold(*field, name)
}
