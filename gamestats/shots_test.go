package gamestats

import (
	"context"
	"net/http"
	"testing"

	"github.com/ojadeyemi/cebl-sdk/cebl"
)

func shotEvent(action, player string, result int) ShotEvent {
	return ShotEvent{X: 50, Y: 25, Result: result, ActionType: action, Player: player}
}

func twoTeamPayload() *GamePayload {
	return &GamePayload{
		Teams: map[string]TeamPayload{
			"2": {
				Name: "Edmonton Stingers",
				Code: "EDM",
				Shots: []ShotEvent{
					shotEvent("3pt", "B. Wright", 0),
				},
			},
			"1": {
				Name: "Calgary Surge",
				Code: "CGY",
				Shots: []ShotEvent{
					shotEvent("2pt", "S. Miller-Moore", 1),
					shotEvent("freethrow", "S. Miller-Moore", 1),
					shotEvent("freethrow", "S. Miller-Moore", 0),
					shotEvent("3pt", "G. Clavelle", 0),
				},
			},
		},
	}
}

func TestExtractShotsSkipsFreeThrows(t *testing.T) {
	records := ExtractShots(twoTeamPayload())

	if len(records) != 3 {
		t.Fatalf("expected 3 field goals, got %d", len(records))
	}
	for _, rec := range records {
		if rec.Points != 2 && rec.Points != 3 {
			t.Fatalf("unexpected point value %d", rec.Points)
		}
	}
}

func TestExtractShotsOrdersHomeTeamFirst(t *testing.T) {
	records := ExtractShots(twoTeamPayload())

	want := []struct {
		player string
		teamID int
		made   bool
		points int
	}{
		{"S. Miller-Moore", HomeTeam, true, 2},
		{"G. Clavelle", HomeTeam, false, 3},
		{"B. Wright", AwayTeam, false, 3},
	}
	for i, w := range want {
		rec := records[i]
		if rec.Player != w.player || rec.TeamID != w.teamID || rec.Made != w.made || rec.Points != w.points {
			t.Fatalf("record %d mismatch: got %+v, want %+v", i, rec, w)
		}
	}
	if records[0].TeamName != "Calgary Surge" || records[0].TeamCode != "CGY" {
		t.Fatalf("expected team identity on records, got %+v", records[0])
	}
}

func TestExtractShotsNilPayload(t *testing.T) {
	if records := ExtractShots(nil); records != nil {
		t.Fatalf("expected nil, got %v", records)
	}
}

func TestFilterByTeam(t *testing.T) {
	records := ExtractShots(twoTeamPayload())

	home := FilterByTeam(records, HomeTeam)
	if len(home) != 2 {
		t.Fatalf("expected 2 home shots, got %d", len(home))
	}
	away := FilterByTeam(records, AwayTeam)
	if len(away) != 1 || away[0].Player != "B. Wright" {
		t.Fatalf("unexpected away shots %+v", away)
	}
}

func TestFilterByPlayerExactMatch(t *testing.T) {
	records := ExtractShots(twoTeamPayload())

	mine := FilterByPlayer(records, "G. Clavelle")
	if len(mine) != 1 || mine[0].Points != 3 {
		t.Fatalf("unexpected player shots %+v", mine)
	}
	if got := FilterByPlayer(records, "g. clavelle"); len(got) != 0 {
		t.Fatalf("expected case-sensitive match, got %+v", got)
	}
}

type stubGamesSource struct {
	games []cebl.GameRecord
	err   error
}

func (s *stubGamesSource) Games(ctx context.Context, year string, opts cebl.GamesOptions) ([]cebl.GameRecord, error) {
	return s.games, s.err
}

func strPtr(s string) *string { return &s }

func TestTeamSeasonShotsSkipsIncompleteGames(t *testing.T) {
	var dataCalls int
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		dataCalls++
		return jsonResponse(http.StatusOK, `{
			"tm": {
				"1": {"name": "Calgary Surge", "shot": [{"x": 30, "y": 40, "r": 1, "actionType": "2pt", "player": "S. Miller-Moore"}]},
				"2": {"name": "Edmonton Stingers", "shot": [{"x": 60, "y": 10, "r": 0, "actionType": "3pt", "player": "B. Wright"}]}
			}
		}`), nil
	})

	src := &stubGamesSource{games: []cebl.GameRecord{
		{
			Status:       strPtr("COMPLETE"),
			HomeTeamName: strPtr("Calgary Surge"),
			AwayTeamName: strPtr("Edmonton Stingers"),
			StatsURL:     strPtr("https://host/u/CEBL/100"),
		},
		{
			Status:       strPtr("SCHEDULED"),
			HomeTeamName: strPtr("Calgary Surge"),
			AwayTeamName: strPtr("Winnipeg Sea Bears"),
			StatsURL:     strPtr("https://host/u/CEBL/101"),
		},
		{
			Status:       strPtr("COMPLETE"),
			HomeTeamName: strPtr("Vancouver Bandits"),
			AwayTeamName: strPtr("Calgary Surge"),
			StatsURL:     nil,
		},
	}}

	provider := newTestProvider(rt)
	shots, err := provider.TeamSeasonShots(context.Background(), src, "2024", "Calgary Surge")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if dataCalls != 1 {
		t.Fatalf("expected 1 data fetch, got %d", dataCalls)
	}
	if len(shots) != 1 || shots[0].Player != "S. Miller-Moore" || shots[0].TeamID != HomeTeam {
		t.Fatalf("unexpected shots %+v", shots)
	}
}

func TestTeamSeasonShotsUsesAwaySide(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"tm": {
				"1": {"name": "Vancouver Bandits", "shot": [{"x": 30, "y": 40, "r": 1, "actionType": "2pt", "player": "K. Simmons"}]},
				"2": {"name": "Calgary Surge", "shot": [{"x": 60, "y": 10, "r": 1, "actionType": "3pt", "player": "G. Clavelle"}]}
			}
		}`), nil
	})

	src := &stubGamesSource{games: []cebl.GameRecord{{
		Status:       strPtr("COMPLETE"),
		HomeTeamName: strPtr("Vancouver Bandits"),
		AwayTeamName: strPtr("Calgary Surge"),
		StatsURL:     strPtr("https://host/u/CEBL/100"),
	}}}

	provider := newTestProvider(rt)
	shots, err := provider.TeamSeasonShots(context.Background(), src, "2024", "Calgary Surge")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(shots) != 1 || shots[0].Player != "G. Clavelle" || shots[0].TeamID != AwayTeam {
		t.Fatalf("unexpected shots %+v", shots)
	}
}

func TestPlayerSeasonShots(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{
			"tm": {
				"1": {"name": "Calgary Surge", "shot": [
					{"x": 30, "y": 40, "r": 1, "actionType": "2pt", "player": "S. Miller-Moore"},
					{"x": 70, "y": 15, "r": 0, "actionType": "3pt", "player": "G. Clavelle"}
				]},
				"2": {"name": "Edmonton Stingers", "shot": []}
			}
		}`), nil
	})

	src := &stubGamesSource{games: []cebl.GameRecord{{
		Status:       strPtr("COMPLETE"),
		HomeTeamName: strPtr("Calgary Surge"),
		AwayTeamName: strPtr("Edmonton Stingers"),
		StatsURL:     strPtr("https://host/u/CEBL/100"),
	}}}

	provider := newTestProvider(rt)
	shots, err := provider.PlayerSeasonShots(context.Background(), src, "2024", "Calgary Surge", "G. Clavelle")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(shots) != 1 || shots[0].Player != "G. Clavelle" || shots[0].Points != 3 {
		t.Fatalf("unexpected shots %+v", shots)
	}
}
