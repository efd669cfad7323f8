package account

import "context"

// Repository - доступ к коллекции аккаунтов. Коллекция всегда читается и
// записывается целиком, инкрементальных обновлений нет.
type Repository interface {
	LoadAll(ctx context.Context) ([]Account, error)
	SaveAll(ctx context.Context, accounts []Account) error
}
