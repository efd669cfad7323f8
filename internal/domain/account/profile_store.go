package account

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"pethome/internal/domain/profile"
)

// ProfileStore привязывает профиль питомца к аккаунту. Аккаунт обязан
// существовать, это гарантирует сессия выше по стеку.
type ProfileStore struct {
	repo Repository
	log  *slog.Logger
}

func NewProfileStore(repo Repository, log *slog.Logger) *ProfileStore {
	return &ProfileStore{
		repo: repo,
		log:  log,
	}
}

// Save заменяет профиль аккаунта целиком, включая файлы. Частичных
// обновлений и слияния со старым профилем нет.
func (s *ProfileStore) Save(ctx context.Context, identifier string, p *profile.Profile) error {
	accounts, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("загрузка аккаунтов: %w", err)
	}

	acc, found := NewDirectory(accounts).FindByIdentifier(identifier)
	if !found {
		return ErrNotFound
	}

	acc.Profile = p

	if err := s.repo.SaveAll(ctx, accounts); err != nil {
		return fmt.Errorf("сохранение аккаунтов: %w", err)
	}

	s.log.Info("profile saved",
		"identifier", identifier,
		"photos", len(p.Photos),
		"certificate", p.Certificate != nil,
	)

	return nil
}
