package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/exp/slog"

	"pethome/internal/app/client/config"
	"pethome/internal/domain/account"
	"pethome/internal/domain/profile"
	"pethome/internal/domain/session"
	"pethome/internal/infrastructure/migration"
	"pethome/internal/infrastructure/storage/sqlite"
	"pethome/internal/render"
)

// App связывает хранилище, доменные сервисы и рендеринг. Один экземпляр
// на запуск команды, все потоки управления идут через его методы.
type App struct {
	config   *config.Config
	log      *slog.Logger
	storage  *sqlite.Storage
	accounts *sqlite.AccountRepository
	service  account.Servicer
	sessions session.Servicer
	profiles *account.ProfileStore
	ingestor *profile.Ingestor
	html     *render.HTML
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Применяем миграции до открытия хранилища
	mg := migration.NewMigration(cfg.DataPath, migration.DefaultEngine)
	if err := mg.Up(); err != nil {
		return nil, fmt.Errorf("ошибка миграции: %w", err)
	}

	storage, err := sqlite.New(cfg.DataPath)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации хранилища: %w", err)
	}

	accountRepo := sqlite.NewAccountRepository(storage, log)
	sessionRepo := sqlite.NewSessionRepository(storage, log)

	return &App{
		config:   cfg,
		log:      log,
		storage:  storage,
		accounts: accountRepo,
		service:  account.NewService(accountRepo, account.NewRegisterValidator(), log),
		sessions: session.NewService(sessionRepo, accountRepo, log),
		profiles: account.NewProfileStore(accountRepo, log),
		ingestor: profile.NewIngestor(profile.OSFileReader{}, log),
		html:     render.NewHTML(cfg.Currency),
	}, nil
}

// Register регистрирует аккаунт и сразу делает его текущим
func (a *App) Register(ctx context.Context, req account.RegisterRequest) (account.Account, error) {
	acc, err := a.service.Register(ctx, req)
	if err != nil {
		return account.Account{}, err
	}

	if err := a.sessions.Start(ctx, acc.Identifier); err != nil {
		return account.Account{}, err
	}

	return acc, nil
}

// Login аутентифицирует и делает аккаунт текущим
func (a *App) Login(ctx context.Context, identifier, secret string) (account.Account, error) {
	acc, err := a.service.Authenticate(ctx, identifier, secret)
	if err != nil {
		return account.Account{}, err
	}

	if err := a.sessions.Start(ctx, acc.Identifier); err != nil {
		return account.Account{}, err
	}

	return acc, nil
}

// Logout завершает текущую сессию
func (a *App) Logout(ctx context.Context) error {
	return a.sessions.End(ctx)
}

// CurrentAccount возвращает аккаунт текущей сессии. session.ErrNoSession
// означает, что пользователя нужно отправить на вход.
func (a *App) CurrentAccount(ctx context.Context) (account.Account, error) {
	return a.sessions.Current(ctx)
}

// SaveProfile собирает профиль из полей формы и выбранных файлов и
// привязывает его к текущему аккаунту, целиком заменяя прежний.
func (a *App) SaveProfile(ctx context.Context, req profile.IngestRequest) (*profile.Profile, error) {
	acc, err := a.sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	p, err := a.ingestor.Ingest(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := a.profiles.Save(ctx, acc.Identifier, p); err != nil {
		return nil, err
	}

	return p, nil
}

// Accounts возвращает всю коллекцию аккаунтов для списка профилей
func (a *App) Accounts(ctx context.Context) ([]account.Account, error) {
	return a.accounts.LoadAll(ctx)
}

// ExportListing рендерит страницу со всеми профилями в файл
func (a *App) ExportListing(ctx context.Context) (string, error) {
	accounts, err := a.accounts.LoadAll(ctx)
	if err != nil {
		return "", err
	}

	page, err := a.html.ListingPage(accounts)
	if err != nil {
		return "", err
	}

	return a.writePage("listing.html", page)
}

// ExportProfile рендерит страницу профиля текущего аккаунта в файл
func (a *App) ExportProfile(ctx context.Context) (string, error) {
	acc, err := a.sessions.Current(ctx)
	if err != nil {
		return "", err
	}

	if !acc.HasProfile() {
		return "", account.ErrNotFound
	}

	page, err := a.html.ProfilePage(acc.Profile)
	if err != nil {
		return "", err
	}

	return a.writePage("profile.html", page)
}

func (a *App) writePage(name string, page []byte) (string, error) {
	if err := os.MkdirAll(a.config.ExportDir, 0700); err != nil {
		return "", fmt.Errorf("ошибка создания директории экспорта: %w", err)
	}

	path := filepath.Join(a.config.ExportDir, name)
	if err := os.WriteFile(path, page, 0600); err != nil {
		return "", fmt.Errorf("ошибка записи страницы: %w", err)
	}

	return path, nil
}

// Terminal возвращает консольный рендерер с валютой из конфигурации
func (a *App) Terminal(out io.Writer) *render.Terminal {
	return render.NewTerminal(out, a.config.Currency)
}

func (a *App) Close() error {
	return a.storage.Close()
}

// Currency возвращает валюту фонда из конфигурации
func (a *App) Currency() string {
	return a.config.Currency
}
