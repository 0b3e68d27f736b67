package models

import "time"

// Team — заявка команды: капитан, пять основных слотов и два запасных.
// Поле IsEdited взводится, когда одобренную команду отредактировал капитан,
// и сбрасывается при повторном одобрении.
type Team struct {
	ID              int                `json:"id"`
	TeamName        string             `json:"teamName"`
	CaptainNick     string             `json:"captainNick"`
	CaptainTelegram string             `json:"captainTelegram"`
	PasswordHash    string             `json:"-"`
	TopNick         string             `json:"topNick"`
	TopTelegram     string             `json:"topTelegram"`
	JungleNick      string             `json:"jungleNick"`
	JungleTelegram  string             `json:"jungleTelegram"`
	MidNick         string             `json:"midNick"`
	MidTelegram     string             `json:"midTelegram"`
	AdcNick         string             `json:"adcNick"`
	AdcTelegram     string             `json:"adcTelegram"`
	SupportNick     string             `json:"supportNick"`
	SupportTelegram string             `json:"supportTelegram"`
	Sub1Nick        string             `json:"sub1Nick"`
	Sub1Telegram    string             `json:"sub1Telegram"`
	Sub2Nick        string             `json:"sub2Nick"`
	Sub2Telegram    string             `json:"sub2Telegram"`
	Status          RegistrationStatus `json:"status"`
	IsEdited        bool               `json:"isEdited"`
	CreatedAt       time.Time          `json:"createdAt"`
}
