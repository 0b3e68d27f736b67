package services

import (
	"context"
	"encoding/json"

	"github.com/smirnovaulia23-wq/cjplfnm-cfqn-liz/repositories"
)

type SettingsService interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key string, value json.RawMessage) error
}

type settingsService struct {
	settings repositories.SettingRepository
}

func NewSettingsService(settings repositories.SettingRepository) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) All(ctx context.Context) (map[string]string, error) {
	return s.settings.All(ctx)
}

// Set сохраняет значение настройки. Строковые значения хранятся как есть,
// всё остальное — как JSON-текст.
func (s *settingsService) Set(ctx context.Context, key string, value json.RawMessage) error {
	if key == "" {
		return ErrSettingKeyRequired
	}

	var str string
	if err := json.Unmarshal(value, &str); err != nil {
		str = string(value)
	}
	return s.settings.Upsert(ctx, key, str)
}
