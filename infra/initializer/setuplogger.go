package initializer

import (
	"io"
	"log/slog"
	"os"

	"github.com/amirasaad/ledgerdesk/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

func setupLogger(cfg *config.Log) *slog.Logger {
	// Define color styles for different log levels
	styles := log.DefaultStyles()
	infoTxtColor := lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	warnTxtColor := lipgloss.AdaptiveColor{Light: "#EE6FF8", Dark: "#EE6FF8"}
	errorTxtColor := lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF6B6B"}
	debugTxtColor := lipgloss.AdaptiveColor{Light: "#7E57C2", Dark: "#7E57C2"}

	levelStyle := func(icon string, c lipgloss.AdaptiveColor) lipgloss.Style {
		return lipgloss.NewStyle().SetString(icon).Bold(true).Padding(0, 1).Foreground(c)
	}
	styles.Levels[log.ErrorLevel] = levelStyle("❌", errorTxtColor)
	styles.Levels[log.InfoLevel] = levelStyle("ℹ️", infoTxtColor)
	styles.Levels[log.WarnLevel] = levelStyle("⚠️", warnTxtColor)
	styles.Levels[log.DebugLevel] = levelStyle("🐛", debugTxtColor)

	// Ledger fields get their own colours so balances stand out in audit lines.
	keyColors := map[string]lipgloss.AdaptiveColor{
		"error":     errorTxtColor,
		"reason":    warnTxtColor,
		"operation": warnTxtColor,
		"number":    infoTxtColor,
		"amount":    infoTxtColor,
		"balance":   infoTxtColor,
		"prefix":    debugTxtColor,
		"caller":    debugTxtColor,
		"time":      debugTxtColor,
	}
	for key, c := range keyColors {
		styles.Keys[key] = lipgloss.NewStyle().Foreground(c)
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formattersMap := map[string]log.Formatter{
		"json":   log.JSONFormatter,
		"text":   log.TextFormatter,
		"logfmt": log.LogfmtFormatter,
	}
	formatter := log.TextFormatter
	if f, ok := formattersMap[cfg.Format]; ok {
		formatter = f
	}

	logger := log.NewWithOptions(logOutput(cfg.Output), log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}

func logOutput(name string) io.Writer {
	switch name {
	case "stderr":
		return os.Stderr
	case "discard":
		return io.Discard
	default:
		return os.Stdout
	}
}
