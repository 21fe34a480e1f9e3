package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldEndpoint   = "endpoint"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldSeason     = "season"
	FieldTeam       = "team"
	FieldPlayer     = "player"
	FieldGameID     = "game_id"
)
