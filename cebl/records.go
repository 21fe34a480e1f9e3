package cebl

// Flat records produced by normalization. The upstream omits fields
// inconsistently across seasons, so every field is a pointer and nil is the
// missing sentinel. Foreign keys (team/player ids) are plain values, no
// object graph is built.

// GameRecord is one row of a season's game listing.
type GameRecord struct {
	ID            *int
	StartTime     *string
	Status        *string
	Competition   *string
	HomeTeamID    *int
	HomeTeamName  *string
	HomeTeamScore *int
	AwayTeamID    *int
	AwayTeamName  *string
	AwayTeamScore *int
	VenueName     *string
	StatsURL      *string
}

// TeamRecord covers both the season team listing and aggregated team
// statistics rows; listing rows leave the stat fields nil.
type TeamRecord struct {
	ID          *int
	Name        *string
	ShortName   *string
	Code        *string
	City        *string
	GamesPlayed *int
	Points      *float64
	Rebounds    *float64
	Assists     *float64
	Steals      *float64
	Blocks      *float64
	Turnovers   *float64
	Fouls       *float64
	FoulsDrawn  *float64
}

// PlayerRecord is one player statistics row, per-season or aggregated.
type PlayerRecord struct {
	ID           *int
	PlayerID     *int
	FullName     *string
	TeamID       *int
	TeamName     *string
	Season       *int
	GamesPlayed  *int
	Minutes      *float64
	Points       *float64
	Rebounds     *float64
	Assists      *float64
	Steals       *float64
	Blocks       *float64
	Turnovers    *float64
	TargetScores *float64
}

// RosterEntry is one player on a team's season roster.
type RosterEntry struct {
	ID           *int
	FullName     *string
	Position     *string
	JerseyNumber *int
	Height       *string
	Hometown     *string
}
