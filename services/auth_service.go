package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/models"
	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

// AuthService — вход админов и управление их учётками.
// Создание и удаление доступны только супер-админу; проверка роли
// вызывающего выполняется на уровне обработчиков/middleware.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*AdminLoginResult, error)
	ListAdmins(ctx context.Context) ([]models.Admin, error)
	CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, adminID int) error
}

type AdminLoginResult struct {
	Token string
	Admin *models.Admin
}

type authService struct {
	admins   repositories.AdminRepository
	sessions repositories.SessionRepository
}

func NewAuthService(admins repositories.AdminRepository, sessions repositories.SessionRepository) AuthService {
	return &authService{
		admins:   admins,
		sessions: sessions,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (*AdminLoginResult, error) {
	if username == "" || password == "" {
		return nil, ErrAdminFieldsRequired
	}

	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			// Неизвестный логин и неверный пароль неразличимы для клиента.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find admin by username: %w", err)
	}

	if !passwordMatches(admin.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Login:     admin.Username,
		UserType:  models.UserTypeAdmin,
		Token:     token,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to store admin session: %w", err)
	}

	admin.PasswordHash = ""
	return &AdminLoginResult{Token: token, Admin: admin}, nil
}

func (s *authService) ListAdmins(ctx context.Context) ([]models.Admin, error) {
	admins, err := s.admins.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range admins {
		admins[i].PasswordHash = ""
	}
	return admins, nil
}

func (s *authService) CreateAdmin(ctx context.Context, username, password string) (*models.Admin, error) {
	if username == "" || password == "" {
		return nil, ErrAdminFieldsRequired
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: HashPassword(password),
		Role:         models.AdminRoleAdmin,
	}
	if err := s.admins.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrAdminUsernameConflict) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	admin.PasswordHash = ""
	return admin, nil
}

func (s *authService) DeleteAdmin(ctx context.Context, adminID int) error {
	if adminID <= 0 {
		return ErrAdminIDRequired
	}

	admin, err := s.admins.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, repositories.ErrAdminNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	// Единственный супер-админ не удаляется никем, включая его самого.
	if admin.Role == models.AdminRoleSuperAdmin {
		return ErrSuperAdminUndeletable
	}

	return s.admins.Delete(ctx, adminID)
}

func passwordMatches(storedHash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(storedHash), []byte(HashPassword(password))) == 1
}
