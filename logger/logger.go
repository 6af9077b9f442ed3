// Package logger holds the global logrus logger.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init with logrus defaults.
var Log = logrus.New()

// Init configures the global logger from LOG_LEVEL (default "info") and
// LOG_FORMAT ("json" or text). Call once from main.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	// Stdout is left to the game; logs go to stderr.
	Log.SetOutput(os.Stderr)
}

// EnableDebug lowers the level to debug unless LOG_LEVEL asked for trace.
func EnableDebug() {
	if Log.GetLevel() < logrus.DebugLevel {
		Log.SetLevel(logrus.DebugLevel)
	}
}
