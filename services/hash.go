package services

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"time"
)

// Срок жизни сессионного токена.
const sessionTTL = 7 * 24 * time.Hour

// HashPassword считает несолёный SHA-256 в hex.
//
// Это осознанный компромисс: в базе лежат хеши именно такого вида, и смена
// алгоритма сломала бы вход всем существующим командам и игрокам. Солёный
// хеш с фактором стоимости здесь был бы строго лучше — но требует миграции
// паролей, которая вне рамок этого сервиса.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// generateSessionToken возвращает URL-safe токен с 32 байтами энтропии.
func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
