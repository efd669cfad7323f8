package account

import "strings"

// Validator - интерфейс для валидации пользовательского ввода
type Validator interface {
	ValidateRegister(identifier, secret, secretConfirm string) error
}

type RegisterValidator struct{}

func NewRegisterValidator() *RegisterValidator {
	return &RegisterValidator{}
}

// ValidateRegister проверяет форму регистрации. Порядок проверок
// фиксированный, возвращается первая ошибка.
func (v *RegisterValidator) ValidateRegister(identifier, secret, secretConfirm string) error {
	if strings.TrimSpace(identifier) == "" || secret == "" || secretConfirm == "" {
		return ErrFieldsRequired
	}

	if secret != secretConfirm {
		return ErrSecretMismatch
	}

	return nil
}
