package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"pethome/internal/domain/account"
)

// usersKey - ключ, под которым хранится JSON-массив всех аккаунтов
const usersKey = "users"

type AccountRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewAccountRepository(storage *Storage, log *slog.Logger) *AccountRepository {
	return &AccountRepository{
		storage: storage,
		log:     log,
	}
}

// LoadAll читает коллекцию аккаунтов целиком. Отсутствующий ключ - пустая
// коллекция. Нечитаемое содержимое тоже: сбой логируется, вызывающий
// получает пустую коллекцию, а не ошибку.
func (r *AccountRepository) LoadAll(ctx context.Context) ([]account.Account, error) {
	value, ok, err := r.storage.Get(ctx, usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var accounts []account.Account
	if err := json.Unmarshal([]byte(value), &accounts); err != nil {
		r.log.Warn("сохраненные аккаунты не читаются, коллекция сброшена", "error", err)
		return nil, nil
	}

	return accounts, nil
}

// SaveAll сериализует и записывает коллекцию целиком, затирая прежнюю
func (r *AccountRepository) SaveAll(ctx context.Context, accounts []account.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("ошибка сериализации аккаунтов: %w", err)
	}

	return r.storage.Set(ctx, usersKey, string(data))
}
