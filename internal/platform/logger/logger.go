package logger

import (
	"io"
	"os"
	"path/filepath"
	"user_api/internal/platform/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger: console output plus a log
// file under the configured folder, named after the API instance.
func Init() {
	cfg := config.AppConfig

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.DebugLevel
	}
	if cfg.APIDebugMode {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr}}

	if err := os.MkdirAll(cfg.LogFolderPath, 0o755); err == nil {
		logPath := filepath.Join(cfg.LogFolderPath, cfg.APIAppName+".log")
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err == nil {
			writers = append(writers, file)
		} else {
			log.Warn().Err(err).Str("path", logPath).Msg("could not open log file")
		}
	}

	log.Logger = zerolog.New(io.MultiWriter(writers...)).With().
		Timestamp().
		Str("app", cfg.APIAppName).
		Logger()
}
