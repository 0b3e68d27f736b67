package models

// RegistrationStatus — статус заявки команды или одиночного игрока.
// Переходы: pending -> approved, pending -> rejected,
// approved -> pending (капитан отредактировал заявку).
type RegistrationStatus string

const (
	StatusPending  RegistrationStatus = "pending"
	StatusApproved RegistrationStatus = "approved"
	StatusRejected RegistrationStatus = "rejected"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
