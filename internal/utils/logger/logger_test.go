package logger

import (
	"context"
	"testing"

	"golang.org/x/exp/slog"

	"pethome/internal/app/client/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		env           string
		expectedLevel slog.Level
	}{
		{
			name:          "local environment",
			env:           config.EnvLocal,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "dev environment",
			env:           config.EnvDev,
			expectedLevel: slog.LevelDebug,
		},
		{
			name:          "prod environment",
			env:           config.EnvProd,
			expectedLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.env)
			require.NotNil(t, logger)
			ctx := context.Background()
			assert.Equal(t, tt.expectedLevel <= slog.LevelDebug, logger.Enabled(ctx, slog.LevelDebug))
			assert.Equal(t, tt.expectedLevel <= slog.LevelInfo, logger.Enabled(ctx, slog.LevelInfo))
		})
	}
}

func TestSetupPrettySlog(t *testing.T) {
	logger := setupPrettySlog()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.True(t, logger.Enabled(ctx, slog.LevelDebug))
}
