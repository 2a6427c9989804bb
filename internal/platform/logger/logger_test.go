package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/chenna14/Real-time-Data-Classification/internal/config"
	"github.com/chenna14/Real-time-Data-Classification/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		name     string
		expected slog.Level
		valid    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"Warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"fatal", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tc.name)
			assert.Equal(t, tc.expected, level)
			assert.Equal(t, tc.valid, ok)
		})
	}
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l, err := logger.Setup(config.ServerConfig{LogLevel: "warn"})
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.Same(t, l, slog.Default())
	assert.False(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, l.Enabled(context.Background(), slog.LevelWarn))
}

func TestFromContext(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	t.Run("stored logger wins", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), l)
		assert.Same(t, l, logger.FromContext(ctx))
		assert.Same(t, l, logger.FromContextOrDefault(ctx, slog.Default()))

		logger.FromContext(ctx).Info("hello", "component", "test")
		logger.AssertLogContains(t, buf, "hello")
		logger.AssertLogField(t, buf, "component", "test")
	})

	t.Run("fallback used when absent", func(t *testing.T) {
		assert.Same(t, l, logger.FromContextOrDefault(context.Background(), l))
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})
}
