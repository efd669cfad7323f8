package sqlite

import (
	"context"

	"golang.org/x/exp/slog"
)

// currentUserKey - ключ маркера текущей сессии
const currentUserKey = "currentUser"

type SessionRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewSessionRepository(storage *Storage, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		storage: storage,
		log:     log,
	}
}

func (r *SessionRepository) Get(ctx context.Context) (string, error) {
	value, ok, err := r.storage.Get(ctx, currentUserKey)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}

	return value, nil
}

func (r *SessionRepository) Set(ctx context.Context, identifier string) error {
	return r.storage.Set(ctx, currentUserKey, identifier)
}

func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.storage.Delete(ctx, currentUserKey)
}
