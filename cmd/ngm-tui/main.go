package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/nextgen-manager/ngm-tui/internal/config"
	"github.com/nextgen-manager/ngm-tui/internal/shell"
	"github.com/nextgen-manager/ngm-tui/internal/ui"
	"github.com/nextgen-manager/ngm-tui/internal/vyos"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	startTab       string
	apiURL         string
	rootCmd        = &cobra.Command{
		Use:   "ngm-tui [#fragment]",
		Short: "VyOS router dashboard TUI",
		Long:  `ngm-tui - A terminal dashboard for browsing the configuration of a VyOS router`,
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about ngm-tui",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file path")
	rootCmd.Flags().StringVar(&startTab, "tab", "", "Section to open on start, e.g. firewall")
	rootCmd.Flags().StringVar(&apiURL, "api-url", "", "Base URL of the configuration backend")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("ngm-tui - VyOS Terminal UI\n\n")    //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

// initialFragment picks the location fragment used on mount. The positional argument wins
// over --tab, which wins over the start_tab config value.
func initialFragment(args []string, flagTab string, configTab string) string {
	candidates := append(append([]string{}, args...), flagTab, configTab)
	for _, candidate := range candidates {
		if fragment := shell.ParseFragment(candidate); fragment != "" {
			return fragment
		}
	}

	return ""
}

// run is the main entry point of ngm-tui.
func run(cmd *cobra.Command, args []string) error {
	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates, cfgFile)
	if apiURL != "" {
		configLoader.Set("api_url", apiURL)
	}

	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, userConfig.LogLevel())
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting ngm-tui", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()), slog.String("api_url", userConfig.APIURL))

	configLoader.Watch()

	httpClient := &http.Client{Timeout: userConfig.HTTPTimeout()}
	newClient := func(baseURL string) ui.Fetcher {
		return vyos.NewClient(baseURL, httpClient)
	}

	history := shell.NewHistory(initialFragment(args, startTab, userConfig.StartTab))
	app := NewApp(userConfig, history, configUpdates)
	app.createUI(cmd.Context(), shell.NewSession(), newClient, configLoader.Path())

	if err := app.Run(cmd.Context()); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
