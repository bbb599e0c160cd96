// Package cmd implements the CLI (Command Line Interface) of the application.
//
// apps list - List every public app
// apps uptodate - Check whether an app version is current
// news - Latest news of an app
// user friends|bans|summaries|groups|resolve - ISteamUser lookups
// stats achievements|global|players|player-achievements|schema|user - ISteamUserStats lookups
// player recent|owned|level|badges|badge-progress|shared - IPlayerService lookups
// util info|apis - ISteamWebAPIUtil lookups
// profile - Summary, bans, level and friend count of a player fetched concurrently
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/leighmacdonald/steamwebapi/internal/config"
	"github.com/leighmacdonald/steamwebapi/pkg/log"
	"github.com/leighmacdonald/steamwebapi/pkg/sliceutil"
	"github.com/leighmacdonald/steamwebapi/pkg/steamweb"
	"github.com/leighmacdonald/steamwebapi/pkg/webapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var (
	BuildVersion = "master" //nolint:gochecknoglobals
	BuildCommit  = ""       //nolint:gochecknoglobals
	BuildDate    = ""       //nolint:gochecknoglobals
)

func versionString() string {
	if BuildCommit == "" {
		return BuildVersion
	}

	return fmt.Sprintf("%s (%s %s)", BuildVersion, BuildCommit, BuildDate)
}

// cli carries the flags and the clients shared by every sub command.
type cli struct {
	cfgFile string
	apiKey  string
	baseURL string
	table   bool
	metrics bool

	config    config.Config
	api       *steamweb.SteamWebAPI
	registry  *prometheus.Registry
	logCloser func()
}

func newRootCmd(app *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:                "steamwebapi",
		Short:              "Query the Steam WebAPI",
		Long:               `Query the Steam WebAPI. Results are printed as JSON unless --table is given.`,
		Version:            versionString(),
		SilenceUsage:       true,
		PersistentPreRunE:  app.setup,
		PersistentPostRunE: app.finish,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/steamwebapi.yml or ./steamwebapi.yml)")
	flags.StringVarP(&app.apiKey, "key", "k", "", "Steam WebAPI key, overrides steam_key")
	flags.StringVar(&app.baseURL, "base-url", "", "WebAPI host, overrides base_url")
	flags.BoolVarP(&app.table, "table", "t", false, "Render results as a table where supported")
	flags.BoolVar(&app.metrics, "metrics", false, "Print request metrics to stderr when done")

	rootCmd.AddCommand(
		appsCmd(app),
		newsCmd(app),
		userCmd(app),
		statsCmd(app),
		playerCmd(app),
		utilCmd(app),
		profileCmd(app),
	)

	return rootCmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &cli{}
	errExecute := newRootCmd(app).ExecuteContext(ctx)

	app.close()
	stop()

	if errExecute != nil {
		os.Exit(1)
	}
}

func (a *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, errConfig := config.Read(a.cfgFile)
	if errConfig != nil {
		return errConfig
	}

	if a.apiKey != "" {
		cfg.SteamKey = a.apiKey
	}

	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}

	a.config = cfg
	a.logCloser = log.MustCreateLogger(cmd.Context(), cfg.LogOptions(BuildVersion))

	webConfig := cfg.WebAPI()

	if cfg.HTTP.Metrics || a.metrics {
		a.registry = prometheus.NewRegistry()

		transport, errTransport := webapi.NewInstrumentedTransport(a.registry, http.DefaultTransport)
		if errTransport != nil {
			return errTransport
		}

		webConfig.HTTPClient = &http.Client{
			Timeout:   sliceutil.FirstPositive(cfg.HTTP.Timeout, webapi.DefaultTimeout),
			Transport: transport,
		}
	}

	a.api = steamweb.New(cfg.SteamKey, webConfig)

	return nil
}

func (a *cli) finish(cmd *cobra.Command, _ []string) error {
	if a.registry == nil {
		return nil
	}

	return writeMetrics(cmd.ErrOrStderr(), a.registry)
}

func (a *cli) close() {
	if a.logCloser != nil {
		a.logCloser()
		a.logCloser = nil
	}
}
