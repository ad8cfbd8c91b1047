// Package cli implements the medbot command tree.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Crusty-Banana/medbot-client/internal/api"
	"github.com/Crusty-Banana/medbot-client/internal/app"
	"github.com/Crusty-Banana/medbot-client/internal/auth"
	"github.com/Crusty-Banana/medbot-client/internal/config"
	"github.com/Crusty-Banana/medbot-client/internal/i18n"
)

var (
	// Global flags
	verbose bool

	// Process-wide wiring, built once in initEnv.
	application *app.Application
	store       *auth.Store
	client      *api.Client
	session     *auth.Session
	lang        i18n.Lang
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "medbot",
	Short: "Terminal client for the MedBot assistant",
	Long: `medbot - a terminal client for the MedBot medical assistant.

Talk to the assistant over a realtime voice session, review past
conversations, and manage your account, all from the terminal.

Configuration is stored in ~/.medbot/config.yaml and can be overridden
with MEDBOT_* environment variables.

Examples:
  # Sign in
  medbot login --email you@example.com

  # Start a voice call in a new conversation
  medbot voice new

  # Review a conversation transcript
  medbot chat <conversation-id>
`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initEnv,
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(conversationsCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(voiceCmd)
}

// initEnv loads configuration and wires the shared clients. It runs before
// every command.
func initEnv(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if verbose {
		cfg.Observability.LogLevel = "debug"
	}

	application = app.New(cfg)

	store, err = auth.NewStore(cfg.Credentials.File)
	if err != nil {
		return err
	}

	client = api.New(cfg.API.BaseURL, store,
		api.WithLogger(application.Logger),
		api.WithTimeout(cfg.Timeout()),
	)
	session = auth.NewSession(store, client, application.Logger)

	lang = i18n.Parse(cfg.Language)
	// A cached profile preference wins over the config file.
	if user, err := store.Profile(); err == nil && user != nil && user.Preferences != nil {
		lang = i18n.FromPreference(user.Preferences.IsVietnamese)
	}
	return nil
}

var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the client version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("medbot", version)
	},
}

// tr looks up an interface string in the active language.
func tr(key string) string {
	return i18n.T(lang, key)
}
