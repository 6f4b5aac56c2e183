// Package cmd implements the mercado-search CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/donaldgifford/mercado-search/internal/api/client"
	"github.com/donaldgifford/mercado-search/internal/config"
)

var (
	cfgFile string
	envFile string
	rootCmd = &cobra.Command{
		Use:   "mercado-search",
		Short: "Browse and search the MercadoLibre catalog",
		Long: "mercado-search browses MercadoLibre categories, searches the catalog,\n" +
			"shows product details and keeps a list of favorite products.\n" +
			"Catalog commands call MercadoLibre directly; favorites commands talk\n" +
			"to a running `mercado-search serve` instance.",
		SilenceUsage: true,
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command
// context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "service config file (YAML); defaults apply when empty")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config is read; missing files are ignored")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "mercado-search API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")
	rootCmd.PersistentFlags().
		String("site", "", "MercadoLibre site ID (default from config, MLA)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))
	cobra.CheckErr(viper.BindPFlag("site", rootCmd.PersistentFlags().Lookup("site")))

	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(itemCmd())
	rootCmd.AddCommand(favoritesCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(browseCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(versionCmd())
}

// initConfig loads the dotenv file, then reads CLI defaults from
// $HOME/.mercado-search.yaml and MERCADO_* environment variables. Variables
// already set in the environment win over the dotenv file.
func initConfig() {
	if err := loadEnvFile(envFile); err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring env file:", err)
	}

	home, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(home)
	}
	viper.SetConfigType("yaml")
	viper.SetConfigName(".mercado-search")

	viper.SetEnvPrefix("MERCADO")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// loadConfig loads the service config, or the defaults when no file was
// given. A --site flag overrides meli.site_id.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if cfgFile != "" {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}
	if site := viper.GetString("site"); site != "" {
		cfg.Meli.SiteID = site
	}
	return cfg, nil
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
