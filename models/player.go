package models

import "time"

// Player — одиночная заявка. Игрок может указать до двух друзей,
// с которыми хочет попасть в одну команду.
type Player struct {
	ID              int                `json:"id"`
	Nickname        string             `json:"nickname"`
	Telegram        string             `json:"telegram"`
	PasswordHash    string             `json:"-"`
	PreferredRoles  []string           `json:"preferredRoles"`
	Status          RegistrationStatus `json:"status"`
	HasFriends      bool               `json:"hasFriends"`
	Friend1Nickname *string            `json:"friend1Nickname"`
	Friend1Telegram *string            `json:"friend1Telegram"`
	Friend1Roles    []string           `json:"friend1Roles"`
	Friend2Nickname *string            `json:"friend2Nickname"`
	Friend2Telegram *string            `json:"friend2Telegram"`
	Friend2Roles    []string           `json:"friend2Roles"`
	CreatedAt       time.Time          `json:"createdAt"`
}
