package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigRead = errors.New("failed to read config file")
	errLoggerInit = errors.New("failed to initialize logger")
	errAPIURL     = errors.New("invalid api_url")
)

const (
	ConfigDirName     = "ngm-tui"
	DefaultConfigName = "ngm-tui"
	DefaultLogName    = "ngm-tui.log"
	EnvPrefix         = "ngm"
	DefaultAPIURL     = "http://localhost:3001"

	DefaultHTTPTimeout  = 15 * time.Second
	DefaultToastTimeout = 6 * time.Second
	DefaultFPS          = 30
)

type Config struct {
	// APIURL is the base url of the configuration backend. The config endpoint is
	// resolved relative to it as {APIURL}/api/config.
	APIURL         string `mapstructure:"api_url"`
	HTTPTimeoutMs  int    `mapstructure:"http_timeout_ms"`
	ToastTimeoutMs int    `mapstructure:"toast_timeout_ms"`
	// StartTab is used as the initial location fragment when none is given on the command line.
	StartTab string `mapstructure:"start_tab"`
	Debug    bool   `mapstructure:"debug"`
	FPS      int    `mapstructure:"fps"`
}

func (c Config) HTTPTimeout() time.Duration {
	if c.HTTPTimeoutMs <= 0 {
		return DefaultHTTPTimeout
	}

	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

func (c Config) ToastTimeout() time.Duration {
	if c.ToastTimeoutMs <= 0 {
		return DefaultToastTimeout
	}

	return time.Duration(c.ToastTimeoutMs) * time.Millisecond
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LogLevel picks the slog level for the configured debug mode.
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}

	return slog.LevelInfo
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	if !path.IsAbs(logPath) {
		logPath = path.Join(xdg.ConfigHome, ConfigDirName, logPath)
	}

	logFile, errLogFile := os.Create(logPath)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}

func normalizeAPIURL(value string) string {
	return strings.TrimRight(strings.TrimSpace(value), "/")
}
