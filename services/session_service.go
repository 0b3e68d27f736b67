package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

// Principal — результат проверки токена: тип пользователя и его актуальный
// профиль, перечитанный из исходной таблицы (не снимок на момент логина).
type Principal struct {
	UserType models.UserType
	Login    string
	Admin    *models.Admin
	Team     *models.Team
	Player   *models.Player
}

func (p *Principal) IsAdmin() bool {
	return p != nil && p.Admin != nil
}

func (p *Principal) IsSuperAdmin() bool {
	return p.IsAdmin() && p.Admin.Role == models.AdminRoleSuperAdmin
}

// OwnsTeam сообщает, является ли пользователь капитаном указанной команды.
func (p *Principal) OwnsTeam(teamID int) bool {
	return p != nil && p.Team != nil && p.Team.ID == teamID
}

type UserLoginResult struct {
	Token    string
	UserType models.UserType
	Team     *models.Team
	Player   *models.Player
}

// SessionService — выпуск и проверка сессионных токенов капитанов,
// одиночных игроков и админов.
type SessionService interface {
	Login(ctx context.Context, telegram, password string) (*UserLoginResult, error)
	Verify(ctx context.Context, token string) (*Principal, error)
	Logout(ctx context.Context, token string) error
}

type sessionService struct {
	sessions repositories.SessionRepository
	teams    repositories.TeamRepository
	players  repositories.PlayerRepository
	admins   repositories.AdminRepository
	now      func() time.Time
}

func NewSessionService(
	sessions repositories.SessionRepository,
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	admins repositories.AdminRepository,
) SessionService {
	return &sessionService{
		sessions: sessions,
		teams:    teams,
		players:  players,
		admins:   admins,
		now:      time.Now,
	}
}

// Login ищет капитана по telegram, затем одиночного игрока. Любое
// несовпадение — одна и та же ошибка: клиент не должен отличать
// неизвестный telegram от неверного пароля.
func (s *sessionService) Login(ctx context.Context, telegram, password string) (*UserLoginResult, error) {
	if telegram == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	team, err := s.teams.GetByCaptainTelegram(ctx, telegram)
	if err != nil && !errors.Is(err, repositories.ErrTeamNotFound) {
		return nil, fmt.Errorf("failed to find team by captain telegram: %w", err)
	}
	if team != nil && passwordMatches(team.PasswordHash, password) {
		token, err := s.createSession(ctx, telegram, models.UserTypeTeamCaptain)
		if err != nil {
			return nil, err
		}
		team.PasswordHash = ""
		return &UserLoginResult{Token: token, UserType: models.UserTypeTeamCaptain, Team: team}, nil
	}

	player, err := s.players.GetByTelegram(ctx, telegram)
	if err != nil && !errors.Is(err, repositories.ErrPlayerNotFound) {
		return nil, fmt.Errorf("failed to find player by telegram: %w", err)
	}
	if player != nil && passwordMatches(player.PasswordHash, password) {
		token, err := s.createSession(ctx, telegram, models.UserTypeIndividualPlayer)
		if err != nil {
			return nil, err
		}
		player.PasswordHash = ""
		return &UserLoginResult{Token: token, UserType: models.UserTypeIndividualPlayer, Player: player}, nil
	}

	return nil, ErrInvalidCredentials
}

// Verify разрешает токен в актуальный профиль. Истекшие сессии удаляются
// лениво прямо здесь; повторная проверка того же токена вернёт
// ErrInvalidToken.
func (s *sessionService) Verify(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	if session.Expired(s.now()) {
		if delErr := s.sessions.DeleteByToken(ctx, token); delErr != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", delErr)
		}
		return nil, ErrTokenExpired
	}

	principal := &Principal{UserType: session.UserType, Login: session.Login}
	switch session.UserType {
	case models.UserTypeAdmin:
		admin, err := s.admins.GetByUsername(ctx, session.Login)
		if err != nil {
			if errors.Is(err, repositories.ErrAdminNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		admin.PasswordHash = ""
		principal.Admin = admin
	case models.UserTypeTeamCaptain:
		team, err := s.teams.GetByCaptainTelegram(ctx, session.Login)
		if err != nil {
			if errors.Is(err, repositories.ErrTeamNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		team.PasswordHash = ""
		principal.Team = team
	case models.UserTypeIndividualPlayer:
		player, err := s.players.GetByTelegram(ctx, session.Login)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return nil, ErrProfileNotFound
			}
			return nil, err
		}
		player.PasswordHash = ""
		principal.Player = player
	default:
		return nil, ErrInvalidToken
	}

	return principal, nil
}

func (s *sessionService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteByToken(ctx, token)
}

func (s *sessionService) createSession(ctx context.Context, login string, userType models.UserType) (string, error) {
	token, err := generateSessionToken()
	if err != nil {
		return "", err
	}
	session := &models.Session{
		Login:     login,
		UserType:  userType,
		Token:     token,
		ExpiresAt: s.now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}
