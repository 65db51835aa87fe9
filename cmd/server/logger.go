package main

import (
	"delivery_orders/internal/config" // Custom package for configuration

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// setupLogger applies the configured formatter and level to the standard logger
func setupLogger(cfg *config.Config) {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine-readable logs in production
	}
	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel) // Fall back to info
		logrus.WithFields(logrus.Fields{
			"log_level": cfg.LogLevel, // Rejected value
			"error":     err.Error(),  // Parse error
		}).Warn("invalid LOG_LEVEL, using info")
		return
	}
	logrus.SetLevel(lvl)
}
