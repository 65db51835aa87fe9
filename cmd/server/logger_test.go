package main

import (
	"testing"

	"delivery_orders/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	hook := test.NewGlobal()
	defer logrus.SetLevel(logrus.InfoLevel)

	t.Run("valid level", func(t *testing.T) {
		hook.Reset()
		setupLogger(&config.Config{LogLevel: "debug"})

		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
		assert.Empty(t, hook.AllEntries())
	})

	t.Run("invalid level warns and keeps info", func(t *testing.T) {
		hook.Reset()
		setupLogger(&config.Config{LogLevel: "chatty"})

		assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		assert.Equal(t, logrus.WarnLevel, entry.Level)
		assert.Equal(t, "chatty", entry.Data["log_level"])
	})

	t.Run("production uses JSON", func(t *testing.T) {
		setupLogger(&config.Config{LogLevel: "info", IsProd: true})

		_, ok := logrus.StandardLogger().Formatter.(*logrus.JSONFormatter)
		assert.True(t, ok)
	})
}
