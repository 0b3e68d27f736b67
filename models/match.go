package models

type MatchStatus string

const (
	MatchStatusWaiting  MatchStatus = "waiting"
	MatchStatusLive     MatchStatus = "live"
	MatchStatusFinished MatchStatus = "finished"
)

// Match сериализуется в snake_case: так исторически устроен контракт
// расписания, в отличие от camelCase у команд и игроков.
type Match struct {
	ID           int         `json:"id"`
	MatchDate    string      `json:"match_date"`
	MatchTime    string      `json:"match_time"`
	Team1ID      *int        `json:"-"`
	Team2ID      *int        `json:"-"`
	Team1Name    string      `json:"team1_name"`
	Team2Name    string      `json:"team2_name"`
	Status       MatchStatus `json:"status"`
	WinnerTeamID *int        `json:"winner_team_id"`
	ScoreTeam1   *int        `json:"score_team1"`
	ScoreTeam2   *int        `json:"score_team2"`
	Round        string      `json:"round"`
	StreamURL    string      `json:"stream_url"`
}
