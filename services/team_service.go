package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

type TeamService interface {
	ListByStatus(ctx context.Context, status models.RegistrationStatus) ([]models.Team, error)
	GetByID(ctx context.Context, id int) (*models.Team, error)
	Register(ctx context.Context, input RegisterTeamInput) (int, error)
	TeamLogin(ctx context.Context, teamName, password string) (*models.Team, error)
	UpdateByAdmin(ctx context.Context, teamID int, input UpdateTeamInput) error
	UpdateByCaptain(ctx context.Context, teamID int, input UpdateTeamInput) error
	UpdateStatus(ctx context.Context, teamID int, status models.RegistrationStatus) error
	Delete(ctx context.Context, teamID int) error
	DeleteWithPassword(ctx context.Context, teamID int, password string) error
	ClearAll(ctx context.Context) (teamsDeleted, playersDeleted int64, err error)
}

// RosterInput — семь слотов состава: пять основных и два запасных.
type RosterInput struct {
	TopNick         string `json:"topNick"`
	TopTelegram     string `json:"topTelegram"`
	JungleNick      string `json:"jungleNick"`
	JungleTelegram  string `json:"jungleTelegram"`
	MidNick         string `json:"midNick"`
	MidTelegram     string `json:"midTelegram"`
	AdcNick         string `json:"adcNick"`
	AdcTelegram     string `json:"adcTelegram"`
	SupportNick     string `json:"supportNick"`
	SupportTelegram string `json:"supportTelegram"`
	Sub1Nick        string `json:"sub1Nick"`
	Sub1Telegram    string `json:"sub1Telegram"`
	Sub2Nick        string `json:"sub2Nick"`
	Sub2Telegram    string `json:"sub2Telegram"`
}

type RegisterTeamInput struct {
	TeamName        string `json:"teamName"`
	CaptainNick     string `json:"captainNick"`
	CaptainTelegram string `json:"captainTelegram"`
	Password        string `json:"password"`
	RosterInput
}

type UpdateTeamInput struct {
	TeamName string `json:"teamName"`
	RosterInput
}

type teamService struct {
	teams    repositories.TeamRepository
	players  repositories.PlayerRepository
	settings repositories.SettingRepository
}

func NewTeamService(
	teams repositories.TeamRepository,
	players repositories.PlayerRepository,
	settings repositories.SettingRepository,
) TeamService {
	return &teamService{
		teams:    teams,
		players:  players,
		settings: settings,
	}
}

func (s *teamService) ListByStatus(ctx context.Context, status models.RegistrationStatus) ([]models.Team, error) {
	teams, err := s.teams.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].PasswordHash = ""
	}
	return teams, nil
}

func (s *teamService) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.teams.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	team.PasswordHash = ""
	return team, nil
}

func (s *teamService) Register(ctx context.Context, input RegisterTeamInput) (int, error) {
	if input.TeamName == "" || input.CaptainTelegram == "" || input.Password == "" {
		return 0, ErrTeamFieldsRequired
	}

	if err := s.checkRegistrationOpen(ctx); err != nil {
		return 0, err
	}

	team := &models.Team{
		TeamName:        input.TeamName,
		CaptainNick:     input.CaptainNick,
		CaptainTelegram: input.CaptainTelegram,
		PasswordHash:    HashPassword(input.Password),
		Status:          models.StatusPending,
	}
	applyRoster(team, input.RosterInput)

	if err := s.teams.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return 0, ErrTeamNameTaken
		}
		return 0, fmt.Errorf("failed to create team: %w", err)
	}
	return team.ID, nil
}

// TeamLogin — исторический вход по названию команды. Сессия не создаётся,
// клиент получает только запись команды.
func (s *teamService) TeamLogin(ctx context.Context, teamName, password string) (*models.Team, error) {
	if teamName == "" || password == "" {
		return nil, ErrTeamLoginRequired
	}

	team, err := s.teams.GetByName(ctx, teamName)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !passwordMatches(team.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	team.PasswordHash = ""
	return team, nil
}

// UpdateByAdmin меняет состав и название; статус заявки не трогается.
func (s *teamService) UpdateByAdmin(ctx context.Context, teamID int, input UpdateTeamInput) error {
	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	if input.TeamName != "" {
		team.TeamName = input.TeamName
	}
	applyRoster(team, input.RosterInput)

	if err := s.teams.UpdateRoster(ctx, team, true); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return ErrTeamNameTaken
		}
		return err
	}
	return nil
}

// UpdateByCaptain меняет только состав. Отредактированная заявка
// возвращается в pending с is_edited=true и ждёт повторной модерации.
func (s *teamService) UpdateByCaptain(ctx context.Context, teamID int, input UpdateTeamInput) error {
	if err := s.checkRegistrationOpen(ctx); err != nil {
		return err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	applyRoster(team, input.RosterInput)

	if err := s.teams.UpdateRoster(ctx, team, false); err != nil {
		return err
	}
	return s.teams.UpdateStatus(ctx, teamID, models.StatusPending, true)
}

// UpdateStatus — решение модератора. Одобрение снимает флаг is_edited.
func (s *teamService) UpdateStatus(ctx context.Context, teamID int, status models.RegistrationStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}

	edited := team.IsEdited
	if status == models.StatusApproved {
		edited = false
	}
	return s.teams.UpdateStatus(ctx, teamID, status, edited)
}

func (s *teamService) Delete(ctx context.Context, teamID int) error {
	err := s.teams.Delete(ctx, teamID)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrTeamNotFound
	}
	return err
}

// DeleteWithPassword — самостоятельное снятие заявки капитаном по паролю.
func (s *teamService) DeleteWithPassword(ctx context.Context, teamID int, password string) error {
	if err := s.checkRegistrationOpen(ctx); err != nil {
		return err
	}

	team, err := s.teams.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return ErrTeamNotFound
		}
		return err
	}
	if !passwordMatches(team.PasswordHash, password) {
		return ErrInvalidPassword
	}

	return s.teams.Delete(ctx, teamID)
}

// ClearAll выносит обе таблицы заявок. Удаления независимы, поэтому
// выполняются параллельно.
func (s *teamService) ClearAll(ctx context.Context) (int64, int64, error) {
	var teamsDeleted, playersDeleted int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.teams.DeleteAll(gctx)
		teamsDeleted = n
		return err
	})
	g.Go(func() error {
		n, err := s.players.DeleteAll(gctx)
		playersDeleted = n
		return err
	})
	if err := g.Wait(); err != nil {
		return 0, 0, err
	}
	return teamsDeleted, playersDeleted, nil
}

// checkRegistrationOpen: регистрация закрыта только при явном 'false',
// отсутствие ключа трактуется как открытая регистрация.
func (s *teamService) checkRegistrationOpen(ctx context.Context) error {
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

func applyRoster(team *models.Team, roster RosterInput) {
	team.TopNick = roster.TopNick
	team.TopTelegram = roster.TopTelegram
	team.JungleNick = roster.JungleNick
	team.JungleTelegram = roster.JungleTelegram
	team.MidNick = roster.MidNick
	team.MidTelegram = roster.MidTelegram
	team.AdcNick = roster.AdcNick
	team.AdcTelegram = roster.AdcTelegram
	team.SupportNick = roster.SupportNick
	team.SupportTelegram = roster.SupportTelegram
	team.Sub1Nick = roster.Sub1Nick
	team.Sub1Telegram = roster.Sub1Telegram
	team.Sub2Nick = roster.Sub2Nick
	team.Sub2Telegram = roster.Sub2Telegram
}
