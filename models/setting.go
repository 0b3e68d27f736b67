package models

import "time"

// Ключи настроек, известные приложению. Таблица settings хранит
// произвольные пары ключ/значение и играет роль глобальных флагов.
const (
	SettingRegistrationOpen  = "registration_open"
	SettingSchedulePublished = "schedule_published"
)

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt"`
}
