package session

import "context"

// Repository - хранение маркера текущей сессии. Пустая строка означает
// отсутствие сессии.
type Repository interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, identifier string) error
	Clear(ctx context.Context) error
}
