// Package cmd implements the cloudbrowser command-line interface.
package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/groveco/cloudbrowser/internal/config"
	"github.com/groveco/cloudbrowser/internal/observability"
	"github.com/groveco/cloudbrowser/pkg/cloud/swift"
)

var rootCmd = &cobra.Command{
	Use:   "cloudbrowser",
	Short: "Browse cloud object-storage containers",
	Long: `cloudbrowser lists containers and objects in cloud object storage,
presenting the flat object namespace as pseudo-directories.

Credentials come from cloudbrowser.yaml or CLOUDBROWSER_* environment
variables (CLOUDBROWSER_DATASTORE_ACCOUNT, CLOUDBROWSER_DATASTORE_SECRET_KEY),
overridable with the --account and --secret-key flags.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	cfg *config.Config

	// Global flag overrides applied on top of the loaded config.
	rootAccount    string
	rootSecretKey  string
	rootAuthURL    string
	rootRegion     string
	rootServiceNet bool
	rootLogLevel   string
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootAccount, "account", "", "Storage account name")
	pf.StringVar(&rootSecretKey, "secret-key", "", "Storage account API key")
	pf.StringVar(&rootAuthURL, "auth-url", "", "Auth endpoint override")
	pf.StringVar(&rootRegion, "region", "", "Storage region")
	pf.BoolVar(&rootServiceNet, "servicenet", false, "Route traffic over the vendor's internal service network")
	pf.StringVar(&rootLogLevel, "log-level", "", "Log level (debug|info|warn|error)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// setup loads configuration, applies flag overrides, and initializes
// logging before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	if rootAccount != "" {
		cfg.Datastore.Account = rootAccount
	}
	if rootSecretKey != "" {
		cfg.Datastore.SecretKey = rootSecretKey
	}
	if rootAuthURL != "" {
		cfg.Datastore.AuthURL = rootAuthURL
	}
	if rootRegion != "" {
		cfg.Datastore.Region = rootRegion
	}
	if cmd.Flags().Changed("servicenet") {
		cfg.Datastore.ServiceNet = rootServiceNet
	}

	level := cfg.Logging.Level
	if rootLogLevel != "" {
		level = rootLogLevel
	}
	return observability.Init(level)
}

// newConnection opens a vendor connection from the effective config.
func newConnection() (*swift.Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return swift.New(swift.Config{
		Account:      cfg.Datastore.Account,
		Key:          cfg.Datastore.SecretKey,
		AuthURL:      cfg.Datastore.AuthURL,
		Region:       cfg.Datastore.Region,
		ServiceNet:   cfg.Datastore.ServiceNet,
		MaxListLimit: cfg.Datastore.MaxListLimit,
	})
}
