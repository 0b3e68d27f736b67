package services

import "errors"

// Ошибки сервисного слоя. Тексты пользовательских сообщений исторически
// смешивают русский и английский — это контракт с фронтендом, не трогать.
var (
	// Аутентификация и сессии
	ErrInvalidCredentials = errors.New("Неверный логин или пароль")
	ErrInvalidToken       = errors.New("Недействительный токен")
	ErrTokenExpired       = errors.New("Токен истек")
	ErrProfileNotFound    = errors.New("Пользователь не найден")

	// Авторизация
	ErrAdminRequired         = errors.New("Требуется админ доступ")
	ErrSuperAdminRequired    = errors.New("Требуется супер-админ")
	ErrEditForbidden         = errors.New("Недостаточно прав для редактирования")
	ErrSuperAdminUndeletable = errors.New("Cannot delete super admin")
	ErrInvalidPassword       = errors.New("Invalid password")

	// Бизнес-правила
	ErrRegistrationClosed = errors.New("Регистрация закрыта")
	ErrInvalidStatus      = errors.New("invalid status value")

	// Валидация
	ErrCredentialsRequired   = errors.New("Telegram и пароль обязательны")
	ErrTokenRequired         = errors.New("Токен обязателен")
	ErrTeamLoginRequired     = errors.New("Требуется название команды и пароль")
	ErrAdminFieldsRequired   = errors.New("Username and password required")
	ErrTeamFieldsRequired    = errors.New("team name, captain telegram and password are required")
	ErrPlayerFieldsRequired  = errors.New("nickname and telegram are required")
	ErrMatchFieldsRequired   = errors.New("match date, time, teams and round are required")
	ErrSettingKeyRequired    = errors.New("setting key is required")
	ErrDeleteFieldsRequired  = errors.New("Missing id, password or type")
	ErrMatchIDRequired       = errors.New("Match ID required")
	ErrAdminIDRequired       = errors.New("Admin ID required")

	// Конфликты
	ErrAdminExists   = errors.New("Admin already exists")
	ErrTeamNameTaken = errors.New("team name is already in use")

	// Отсутствующие ресурсы
	ErrTeamNotFound   = errors.New("Team not found")
	ErrPlayerNotFound = errors.New("Player not found")
	ErrAdminNotFound  = errors.New("Admin not found")
	ErrMatchNotFound  = errors.New("Match not found")
)
