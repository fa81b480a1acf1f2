package config

import (
	"errors"
	"log/slog"
	"net/url"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

// NewLoader creates a loader searching the XDG config dir and the working directory. When configFile
// is non-empty only that file is used.
func NewLoader(changes chan<- Config, configFile string) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("api_url", DefaultAPIURL)
	loader.SetDefault("http_timeout_ms", int(DefaultHTTPTimeout.Milliseconds()))
	loader.SetDefault("toast_timeout_ms", int(DefaultToastTimeout.Milliseconds()))
	loader.SetDefault("start_tab", "")
	loader.SetDefault("debug", false)
	loader.SetDefault("fps", DefaultFPS)
	loader.SetConfigType("yaml")
	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()
	// The backend address has historically been provided under a few different names.
	if err := loader.BindEnv("api_url", "NGM_API_URL", "API_URL", "NEXT_PUBLIC_API_URL"); err != nil {
		slog.Error("Failed to bind api_url env vars", slog.String("error", err.Error()))
	}

	return &loader
}

// Watch starts watching the config file for external modifications. Changed configs are sent
// down the changes channel.
func (cl *Loader) Watch() {
	cl.OnConfigChange(cl.onConfigChange)
	cl.WatchConfig()
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if !in.Has(fsnotify.Write) && !in.Has(fsnotify.Rename) {
		return
	}

	slog.Debug("External config reload triggered", slog.String("file", in.Name))
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	if cl.changes != nil {
		cl.changes <- config
	}
}

// Read loads the config file, if any, and decodes the merged defaults, file and env values.
// A missing config file is not an error.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	config.APIURL = normalizeAPIURL(config.APIURL)
	if config.APIURL == "" {
		config.APIURL = DefaultAPIURL
	}

	parsed, errURL := url.Parse(config.APIURL)
	if errURL != nil {
		return Config{}, errors.Join(errURL, errAPIURL, errConfigRead)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return Config{}, errors.Join(errAPIURL, errConfigRead)
	}

	return config, nil
}
