package handlers_test

import (
	"context"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/services"
)

// Заглушки сервисов: фиксируют вызовы и отдают заранее заданные ответы.

type stubSessionService struct {
	loginResult *services.UserLoginResult
	loginErr    error
	principals  map[string]*services.Principal
	loggedOut   []string
}

func (s *stubSessionService) Login(_ context.Context, telegram, password string) (*services.UserLoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubSessionService) Verify(_ context.Context, token string) (*services.Principal, error) {
	if token == "" {
		return nil, services.ErrTokenRequired
	}
	principal, ok := s.principals[token]
	if !ok {
		return nil, services.ErrInvalidToken
	}
	return principal, nil
}

func (s *stubSessionService) Logout(_ context.Context, token string) error {
	s.loggedOut = append(s.loggedOut, token)
	return nil
}

type stubTeamService struct {
	teams []models.Team
	team  *models.Team
	err   error

	registerID  int
	registerErr error

	adminUpdatedID   int
	captainUpdatedID int
	updateErr        error

	statusID  int
	status    models.RegistrationStatus
	statusErr error

	deletedID         int
	deleteErr         error
	deletedWithPassID int
	deleteWithPassErr error

	cleared bool
}

func (s *stubTeamService) ListByStatus(_ context.Context, _ models.RegistrationStatus) ([]models.Team, error) {
	return s.teams, s.err
}

func (s *stubTeamService) GetByID(_ context.Context, _ int) (*models.Team, error) {
	return s.team, s.err
}

func (s *stubTeamService) Register(_ context.Context, _ services.RegisterTeamInput) (int, error) {
	return s.registerID, s.registerErr
}

func (s *stubTeamService) TeamLogin(_ context.Context, _, _ string) (*models.Team, error) {
	return s.team, s.err
}

func (s *stubTeamService) UpdateByAdmin(_ context.Context, teamID int, _ services.UpdateTeamInput) error {
	s.adminUpdatedID = teamID
	return s.updateErr
}

func (s *stubTeamService) UpdateByCaptain(_ context.Context, teamID int, _ services.UpdateTeamInput) error {
	s.captainUpdatedID = teamID
	return s.updateErr
}

func (s *stubTeamService) UpdateStatus(_ context.Context, teamID int, status models.RegistrationStatus) error {
	s.statusID = teamID
	s.status = status
	return s.statusErr
}

func (s *stubTeamService) Delete(_ context.Context, teamID int) error {
	s.deletedID = teamID
	return s.deleteErr
}

func (s *stubTeamService) DeleteWithPassword(_ context.Context, teamID int, _ string) error {
	s.deletedWithPassID = teamID
	return s.deleteWithPassErr
}

func (s *stubTeamService) ClearAll(_ context.Context) (int64, int64, error) {
	s.cleared = true
	return 2, 3, nil
}

type stubPlayerService struct {
	players []models.Player

	registerID  int
	registerErr error

	statusID  int
	status    models.RegistrationStatus
	statusErr error

	deletedID         int
	deleteErr         error
	deletedWithPassID int
	deleteWithPassErr error
}

func (s *stubPlayerService) List(_ context.Context) ([]models.Player, error) {
	return s.players, nil
}

func (s *stubPlayerService) Register(_ context.Context, _ services.RegisterPlayerInput) (int, error) {
	return s.registerID, s.registerErr
}

func (s *stubPlayerService) UpdateStatus(_ context.Context, playerID int, status models.RegistrationStatus) error {
	s.statusID = playerID
	s.status = status
	return s.statusErr
}

func (s *stubPlayerService) Delete(_ context.Context, playerID int) error {
	s.deletedID = playerID
	return s.deleteErr
}

func (s *stubPlayerService) DeleteWithPassword(_ context.Context, playerID int, _ string) error {
	s.deletedWithPassID = playerID
	return s.deleteWithPassErr
}

type stubAuthService struct {
	loginResult *services.AdminLoginResult
	loginErr    error

	admins []models.Admin

	createdAdmin *models.Admin
	createErr    error

	deletedID int
	deleteErr error
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*services.AdminLoginResult, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loginResult, nil
}

func (s *stubAuthService) ListAdmins(_ context.Context) ([]models.Admin, error) {
	return s.admins, nil
}

func (s *stubAuthService) CreateAdmin(_ context.Context, _, _ string) (*models.Admin, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.createdAdmin, nil
}

func (s *stubAuthService) DeleteAdmin(_ context.Context, adminID int) error {
	s.deletedID = adminID
	return s.deleteErr
}

func adminPrincipal(role models.AdminRole) *services.Principal {
	return &services.Principal{
		UserType: models.UserTypeAdmin,
		Admin:    &models.Admin{ID: 1, Username: "root", Role: role},
	}
}

func captainPrincipal(teamID int) *services.Principal {
	return &services.Principal{
		UserType: models.UserTypeTeamCaptain,
		Team:     &models.Team{ID: teamID, TeamName: "Alpha", CaptainTelegram: "@cap"},
	}
}
