package cebl

import (
	"fmt"
	"strconv"
	"strings"
)

// Record kinds named in MalformedRecordError.
const (
	kindGame   = "game"
	kindTeam   = "team"
	kindPlayer = "player"
	kindRoster = "roster"
)

// Normalization maps each raw JSON object to exactly one flat record,
// preserving input order. Absent fields become nil; numeric fields that
// arrive as strings are coerced, and a present but unparseable value fails
// with MalformedRecordError rather than dropping the record.

func normalizeGames(raw []map[string]any) ([]GameRecord, error) {
	records := make([]GameRecord, 0, len(raw))
	for _, obj := range raw {
		rec, err := mapGame(obj)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeTeams(raw []map[string]any) ([]TeamRecord, error) {
	records := make([]TeamRecord, 0, len(raw))
	for _, obj := range raw {
		rec, err := mapTeam(obj)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizePlayers(raw []map[string]any) ([]PlayerRecord, error) {
	records := make([]PlayerRecord, 0, len(raw))
	for _, obj := range raw {
		rec, err := mapPlayer(obj)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func normalizeRoster(raw []map[string]any) ([]RosterEntry, error) {
	records := make([]RosterEntry, 0, len(raw))
	for _, obj := range raw {
		rec, err := mapRosterEntry(obj)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func mapGame(obj map[string]any) (GameRecord, error) {
	f := fieldReader{kind: kindGame, obj: obj}
	rec := GameRecord{
		ID:            f.intField("id"),
		StartTime:     f.stringField("start_time_utc"),
		Status:        f.stringField("status"),
		Competition:   f.stringField("competition"),
		HomeTeamID:    f.intField("home_team_id"),
		HomeTeamName:  f.stringField("home_team_name"),
		HomeTeamScore: f.intField("home_team_score"),
		AwayTeamID:    f.intField("away_team_id"),
		AwayTeamName:  f.stringField("away_team_name"),
		AwayTeamScore: f.intField("away_team_score"),
		VenueName:     f.stringField("venue_name"),
		StatsURL:      f.stringField("stats_url_en"),
	}
	return rec, f.err
}

func mapTeam(obj map[string]any) (TeamRecord, error) {
	f := fieldReader{kind: kindTeam, obj: obj}
	rec := TeamRecord{
		ID:          f.intField("id"),
		Name:        f.stringField("name_en"),
		ShortName:   f.stringField("short_name_en"),
		Code:        f.stringField("code"),
		City:        f.stringField("city"),
		GamesPlayed: f.intField("games_played"),
		Points:      f.floatField("points"),
		Rebounds:    f.floatField("rebounds"),
		Assists:     f.floatField("assists"),
		Steals:      f.floatField("steals"),
		Blocks:      f.floatField("blocks"),
		Turnovers:   f.floatField("turnovers"),
		Fouls:       f.floatField("fouls"),
		FoulsDrawn:  f.floatField("fouls_drawn"),
	}
	return rec, f.err
}

func mapPlayer(obj map[string]any) (PlayerRecord, error) {
	f := fieldReader{kind: kindPlayer, obj: obj}
	rec := PlayerRecord{
		ID:           f.intField("id"),
		PlayerID:     f.intField("player_id"),
		FullName:     f.stringField("full_name"),
		TeamID:       f.intField("team_id"),
		TeamName:     f.stringField("team_name"),
		Season:       f.intField("season"),
		GamesPlayed:  f.intField("games_played"),
		Minutes:      f.floatField("minutes"),
		Points:       f.floatField("points"),
		Rebounds:     f.floatField("rebounds"),
		Assists:      f.floatField("assists"),
		Steals:       f.floatField("steals"),
		Blocks:       f.floatField("blocks"),
		Turnovers:    f.floatField("turnovers"),
		TargetScores: f.floatField("target_scores"),
	}
	return rec, f.err
}

func mapRosterEntry(obj map[string]any) (RosterEntry, error) {
	f := fieldReader{kind: kindRoster, obj: obj}
	rec := RosterEntry{
		ID:           f.intField("id"),
		FullName:     f.stringField("full_name"),
		Position:     f.stringField("position"),
		JerseyNumber: f.intField("jersey_number"),
		Height:       f.stringField("height"),
		Hometown:     f.stringField("hometown"),
	}
	return rec, f.err
}

// fieldReader accumulates the first coercion failure while mapping one
// record, so mapping code reads as a flat field list.
type fieldReader struct {
	kind string
	obj  map[string]any
	err  error
}

func (f *fieldReader) stringField(key string) *string {
	v, ok := f.obj[key]
	if !ok || v == nil {
		return nil
	}
	if s, isString := v.(string); isString {
		return &s
	}
	s := fmt.Sprint(v)
	return &s
}

func (f *fieldReader) intField(key string) *int {
	v, ok := f.obj[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil
		}
		i, err := strconv.Atoi(trimmed)
		if err != nil {
			f.fail(key, n)
			return nil
		}
		return &i
	default:
		f.fail(key, fmt.Sprint(v))
		return nil
	}
}

func (f *fieldReader) floatField(key string) *float64 {
	v, ok := f.obj[key]
	if !ok || v == nil {
		return nil
	}
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			f.fail(key, n)
			return nil
		}
		return &parsed
	default:
		f.fail(key, fmt.Sprint(v))
		return nil
	}
}

func (f *fieldReader) fail(field, raw string) {
	if f.err == nil {
		f.err = &MalformedRecordError{Kind: f.kind, Field: field, Raw: raw}
	}
}
