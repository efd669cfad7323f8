package logger

import (
	"os"

	"golang.org/x/exp/slog"

	"pethome/internal/app/client/config"
)

// New создает логгер в зависимости от окружения:
// local - текстовый вывод с уровнем Debug, dev - JSON c Debug, prod - JSON c Info.
func New(env string) *slog.Logger {
	switch env {
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return setupPrettySlog()
	}
}

func setupPrettySlog() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
