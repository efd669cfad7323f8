package account

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

type RegisterRequest struct {
	Identifier    string
	Secret        string
	SecretConfirm string
}

type Servicer interface {
	Register(ctx context.Context, req RegisterRequest) (Account, error)
	Authenticate(ctx context.Context, identifier, secret string) (Account, error)
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

// Register создает новый аккаунт со стартовым фондом и без профиля.
// Идентификатор нормализуется до проверки уникальности, поэтому дубликаты
// отсекаются без учета регистра.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (Account, error) {
	if err := s.validator.ValidateRegister(req.Identifier, req.Secret, req.SecretConfirm); err != nil {
		s.log.Debug("validation failed", "identifier", req.Identifier, "error", err)
		return Account{}, err
	}

	identifier := Normalize(req.Identifier)

	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("загрузка аккаунтов: %w", err)
	}

	if _, found := NewDirectory(accounts).FindByIdentifier(identifier); found {
		s.log.Debug("duplicate registration rejected", "identifier", identifier)
		return Account{}, ErrAlreadyExists
	}

	acc := Account{
		Identifier: identifier,
		Secret:     req.Secret,
		Fund:       StartFund,
	}

	accounts = append(accounts, acc)
	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		return Account{}, fmt.Errorf("сохранение аккаунтов: %w", err)
	}

	s.log.Info("account registered", "identifier", identifier)

	return acc, nil
}

// Authenticate проверяет пару идентификатор/секрет. Неизвестный
// идентификатор и неверный секрет неразличимы для вызывающего.
func (s *Service) Authenticate(ctx context.Context, identifier, secret string) (Account, error) {
	identifier = Normalize(identifier)

	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		return Account{}, fmt.Errorf("загрузка аккаунтов: %w", err)
	}

	acc, found := NewDirectory(accounts).FindByIdentifier(identifier)
	if !found || acc.Secret != secret {
		s.log.Debug("authentication rejected", "identifier", identifier)
		return Account{}, ErrInvalidAuth
	}

	return *acc, nil
}
