package initializer

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/kobopay/accountsvc/pkg/config"
)

// SetupLogger builds the process logger: a charmbracelet handler behind slog,
// styled per level, and installs it as the slog default.
func SetupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"})
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO").
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"})
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"})
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Padding(0, 1).
		Foreground(lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"})

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	handler := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	handler.SetStyles(styles)

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
