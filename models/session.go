package models

import "time"

type UserType string

const (
	UserTypeAdmin            UserType = "admin"
	UserTypeTeamCaptain      UserType = "team_captain"
	UserTypeIndividualPlayer UserType = "individual_player"
)

// Session — строка таблицы sessions. Login — username для админов,
// telegram для капитанов и одиночных игроков.
type Session struct {
	ID        int
	Login     string
	UserType  UserType
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
