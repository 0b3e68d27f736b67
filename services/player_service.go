package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

type PlayerService interface {
	List(ctx context.Context) ([]models.Player, error)
	Register(ctx context.Context, input RegisterPlayerInput) (int, error)
	UpdateStatus(ctx context.Context, playerID int, status models.RegistrationStatus) error
	Delete(ctx context.Context, playerID int) error
	DeleteWithPassword(ctx context.Context, playerID int, password string) error
}

type RegisterPlayerInput struct {
	Nickname        string   `json:"nickname"`
	Telegram        string   `json:"telegram"`
	Password        string   `json:"password"`
	PreferredRoles  []string `json:"preferredRoles"`
	HasFriends      bool     `json:"hasFriends"`
	Friend1Nickname string   `json:"friend1Nickname"`
	Friend1Telegram string   `json:"friend1Telegram"`
	Friend1Roles    []string `json:"friend1Roles"`
	Friend2Nickname string   `json:"friend2Nickname"`
	Friend2Telegram string   `json:"friend2Telegram"`
	Friend2Roles    []string `json:"friend2Roles"`
}

type playerService struct {
	players  repositories.PlayerRepository
	settings repositories.SettingRepository
}

func NewPlayerService(players repositories.PlayerRepository, settings repositories.SettingRepository) PlayerService {
	return &playerService{
		players:  players,
		settings: settings,
	}
}

func (s *playerService) List(ctx context.Context) ([]models.Player, error) {
	players, err := s.players.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range players {
		players[i].PasswordHash = ""
	}
	return players, nil
}

func (s *playerService) Register(ctx context.Context, input RegisterPlayerInput) (int, error) {
	if input.Nickname == "" || input.Telegram == "" {
		return 0, ErrPlayerFieldsRequired
	}

	if err := s.checkRegistrationOpen(ctx); err != nil {
		return 0, err
	}

	// Пароль у одиночной заявки опционален; без него игрок не сможет
	// войти, но заявка остаётся валидной.
	passwordHash := ""
	if input.Password != "" {
		passwordHash = HashPassword(input.Password)
	}

	player := &models.Player{
		Nickname:       input.Nickname,
		Telegram:       input.Telegram,
		PasswordHash:   passwordHash,
		PreferredRoles: input.PreferredRoles,
		Status:         models.StatusPending,
		HasFriends:     input.HasFriends,
	}
	if input.HasFriends {
		player.Friend1Nickname = optionalString(input.Friend1Nickname)
		player.Friend1Telegram = optionalString(input.Friend1Telegram)
		player.Friend1Roles = input.Friend1Roles
		player.Friend2Nickname = optionalString(input.Friend2Nickname)
		player.Friend2Telegram = optionalString(input.Friend2Telegram)
		player.Friend2Roles = input.Friend2Roles
	}

	if err := s.players.Create(ctx, player); err != nil {
		return 0, fmt.Errorf("failed to create player: %w", err)
	}
	return player.ID, nil
}

func (s *playerService) UpdateStatus(ctx context.Context, playerID int, status models.RegistrationStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	err := s.players.UpdateStatus(ctx, playerID, status)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

func (s *playerService) Delete(ctx context.Context, playerID int) error {
	err := s.players.Delete(ctx, playerID)
	if errors.Is(err, repositories.ErrPlayerNotFound) {
		return ErrPlayerNotFound
	}
	return err
}

// DeleteWithPassword: заявка без пароля удаляется без проверки, иначе
// предъявленный пароль обязан совпасть с сохранённым хешем.
func (s *playerService) DeleteWithPassword(ctx context.Context, playerID int, password string) error {
	if err := s.checkRegistrationOpen(ctx); err != nil {
		return err
	}

	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return err
	}
	if player.PasswordHash != "" && !passwordMatches(player.PasswordHash, password) {
		return ErrInvalidPassword
	}

	return s.players.Delete(ctx, playerID)
}

func (s *playerService) checkRegistrationOpen(ctx context.Context) error {
	value, err := s.settings.Get(ctx, models.SettingRegistrationOpen)
	if err != nil {
		if errors.Is(err, repositories.ErrSettingNotFound) {
			return nil
		}
		return err
	}
	if value == "false" {
		return ErrRegistrationClosed
	}
	return nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
