package gamestats

// GamePayload is the subset of the live-stats document the SDK consumes.
// Team keys under "tm" are "1" (home) and "2" (away).
type GamePayload struct {
	Clock        string                 `json:"clock"`
	Period       int                    `json:"period"`
	PeriodLength int                    `json:"periodLength"`
	PeriodType   string                 `json:"periodType"`
	InOT         int                    `json:"inOT"`
	Teams        map[string]TeamPayload `json:"tm"`
}

type TeamPayload struct {
	Name      string      `json:"name"`
	ShortName string      `json:"shortName"`
	Code      string      `json:"code"`
	Coach     string      `json:"coach"`
	Shots     []ShotEvent `json:"shot"`
}

// ShotEvent is one entry in a team's raw shot list. Coordinates are in the
// data host's reference frame and are passed through untouched; flipping for
// court side is a presentation concern.
type ShotEvent struct {
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Result       int     `json:"r"`
	ActionType   string  `json:"actionType"`
	SubType      string  `json:"subType"`
	Player       string  `json:"player"`
	ShirtNumber  string  `json:"shirtNumber"`
	PlayerNumber int     `json:"pno"`
	Period       int     `json:"per"`
	PeriodType   string  `json:"perType"`
}
