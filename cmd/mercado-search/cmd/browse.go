package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/donaldgifford/mercado-search/internal/tui"
	"github.com/donaldgifford/mercado-search/pkg/logger"
)

func browseCmd() *cobra.Command {
	var (
		logFile   string
		prefsPath string
		query     string
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse categories, search and view products interactively",
		Long: "Open the terminal UI. Pick a category to search within it, or press /\n" +
			"to search the whole site. More results load as you reach the end of the\n" +
			"list. The last site and query are remembered in the preferences file.",
		Example: `  mercado-search browse
  mercado-search browse --query "bicicleta rodado 29"
  mercado-search browse --site MLB --log-file /tmp/mercado-search.log`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			// The UI owns the terminal, so logs go to a file or nowhere.
			log := logger.Discard()
			if logFile != "" {
				var closer io.Closer
				log, closer, err = logger.NewFile(logFile, cfg.Logging.Level, cfg.Logging.Format)
				if err != nil {
					return err
				}
				defer func() { _ = closer.Close() }()
			}

			repo := newRepository(&cfg.Meli, newRateLimiter(&cfg.Meli), log)

			// An explicit --site or config file wins over the remembered site.
			site := viper.GetString("site")
			if site == "" && cfgFile != "" {
				site = cfg.Meli.SiteID
			}

			return tui.Run(tui.Options{
				Context:   cmd.Context(),
				Repo:      repo,
				SiteID:    site,
				Query:     query,
				Logger:    log,
				PrefsPath: prefsPath,
			})
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file while the UI runs")
	cmd.Flags().StringVar(&prefsPath, "prefs", tui.DefaultPrefsPath(), "preferences file (TOML)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "search the whole site for this text on start")

	return cmd
}
