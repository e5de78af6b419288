package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"hmps-api/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Init installs a JSON slog handler as the process default. Output goes to
// stdout, a rotated file, or both.
func Init(cfg config.LogConfig) {
	slog.SetDefault(slog.New(slog.NewJSONHandler(Writer(cfg), &slog.HandlerOptions{Level: ParseLevel(cfg.Level)})))
	Info("logger initialized", "level", cfg.Level, "file", cfg.File)
}

func Writer(cfg config.LogConfig) io.Writer {
	var writers []io.Writer
	if cfg.Console {
		writers = append(writers, os.Stdout)
	}
	if cfg.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			LocalTime:  true,
		})
	}
	if len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	return io.MultiWriter(writers...)
}

func Info(msg string, args ...any)  { slog.Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Error(msg, args...) }
func Debug(msg string, args ...any) { slog.Debug(msg, args...) }

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
