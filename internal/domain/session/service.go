package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"pethome/internal/domain/account"
)

// ErrNoSession возвращается, когда сессии нет или ее маркер указывает на
// несуществующий аккаунт. Для вызывающего это сигнал отправить
// пользователя на вход.
var ErrNoSession = errors.New("no active session")

type Servicer interface {
	Current(ctx context.Context) (account.Account, error)
	Start(ctx context.Context, identifier string) error
	End(ctx context.Context) error
}

type Service struct {
	repo     Repository
	accounts account.Repository
	log      *slog.Logger
}

func NewService(repo Repository, accounts account.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		accounts: accounts,
		log:      log,
	}
}

// Current возвращает аккаунт текущей сессии. Маркер перечитывается при
// каждом вызове и заново сверяется с коллекцией аккаунтов: хранилище
// могли очистить между вызовами.
func (s *Service) Current(ctx context.Context) (account.Account, error) {
	identifier, err := s.repo.Get(ctx)
	if err != nil {
		return account.Account{}, fmt.Errorf("чтение маркера сессии: %w", err)
	}

	if identifier == "" {
		return account.Account{}, ErrNoSession
	}

	accounts, err := s.accounts.LoadAll(ctx)
	if err != nil {
		return account.Account{}, fmt.Errorf("загрузка аккаунтов: %w", err)
	}

	acc, found := account.NewDirectory(accounts).FindByIdentifier(identifier)
	if !found {
		s.log.Warn("session marker points to missing account", "identifier", identifier)
		return account.Account{}, ErrNoSession
	}

	return *acc, nil
}

// Start делает аккаунт текущим
func (s *Service) Start(ctx context.Context, identifier string) error {
	if err := s.repo.Set(ctx, identifier); err != nil {
		return fmt.Errorf("запись маркера сессии: %w", err)
	}

	s.log.Debug("session started", "identifier", identifier)
	return nil
}

// End завершает сессию
func (s *Service) End(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("очистка маркера сессии: %w", err)
	}

	s.log.Debug("session ended")
	return nil
}
