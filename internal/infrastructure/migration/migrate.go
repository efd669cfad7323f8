package migration

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	// Blank import required for sqlite3 driver registration for migrations
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrator — интерфейс для самой библиотеки migrate.Migrate
type Migrator interface {
	Up() error
	Close() (error, error)
}

// MigrationEngine — фабрика для создания мигратора (чтобы не лезть в ФС и БД в тестах)
type MigrationEngine func(databaseURL string) (Migrator, error)

type Migration struct {
	dataPath string
	engine   MigrationEngine
}

func NewMigration(dataPath string, engine MigrationEngine) *Migration {
	return &Migration{
		dataPath: dataPath,
		engine:   engine,
	}
}

// DefaultEngine — реальная реализация: встроенные миграции поверх файла sqlite
func DefaultEngine(databaseURL string) (Migrator, error) {
	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, err
	}
	return migrate.NewWithSourceInstance("iofs", source, databaseURL)
}

func (mg *Migration) Up() (err error) {
	m, err := mg.engine("sqlite3://" + mg.dataPath)
	if err != nil {
		return err
	}
	defer func() {
		serr, dberr := m.Close()
		if serr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration source error: %v", err, serr)
			} else {
				err = serr
			}
		}
		if dberr != nil {
			if err != nil {
				err = fmt.Errorf("%w; migration database error: %v", err, dberr)
			} else {
				err = dberr
			}
		}
	}()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%w; migration up error", err)
	}
	return nil
}
