package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Storage - локальное key-value хранилище поверх sqlite, аналог
// origin-local хранилища браузера. Все данные приложения лежат под
// двумя ключами: список аккаунтов и маркер текущей сессии.
type Storage struct {
	db *sql.DB
}

func New(path string) (*Storage, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия базы данных: %w", err)
	}

	storage := &Storage{db: db}

	// Создаем таблицы
	if err := storage.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ошибка инициализации таблиц: %w", err)
	}

	return storage, nil
}

func (s *Storage) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS storage (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)

	return err
}

// Get возвращает значение по ключу. Второй результат - признак того,
// что ключ существует.
func (s *Storage) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM storage WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("ошибка чтения ключа %q: %w", key, err)
	}

	return value, true, nil
}

// Set записывает значение по ключу, затирая прежнее
func (s *Storage) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("ошибка записи ключа %q: %w", key, err)
	}

	return nil
}

// Delete удаляет ключ. Отсутствие ключа ошибкой не считается.
func (s *Storage) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM storage WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("ошибка удаления ключа %q: %w", key, err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}
