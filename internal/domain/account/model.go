package account

import (
	"strings"

	"pethome/internal/domain/profile"
)

// StartFund - стартовый фонд, начисляемый при регистрации. После
// регистрации ядро его не меняет.
const StartFund = 4.0

type Account struct {
	Identifier string           `json:"identifier"`
	Secret     string           `json:"secret"` // хранится открытым текстом, принятое ограничение
	Fund       float64          `json:"fund"`
	Profile    *profile.Profile `json:"profile,omitempty"`
}

// HasProfile сообщает, привязан ли к аккаунту профиль питомца
func (a *Account) HasProfile() bool {
	return a.Profile != nil
}

// Normalize приводит идентификатор к каноническому виду:
// пробелы по краям убираются, буквы приводятся к нижнему регистру.
func Normalize(identifier string) string {
	return strings.ToLower(strings.TrimSpace(identifier))
}
