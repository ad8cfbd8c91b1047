package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/Crusty-Banana/medbot-client/internal/config"
	"github.com/Crusty-Banana/medbot-client/internal/observability/logging"
)

// Application holds process-wide state for the client.
type Application struct {
	StartupTime time.Time
	Logger      zerolog.Logger
	Cfg         *config.Config
}

// New constructs a new Application from the provided configuration and
// initializes the global logger from it.
func New(cfg *config.Config) *Application {
	logging.Init(logging.Config{
		Level:      cfg.Observability.LogLevel,
		Format:     cfg.Observability.LogFormat,
		TimeFormat: time.RFC3339,
	})

	a := &Application{
		StartupTime: time.Now().UTC(),
		Logger:      logging.Logger(),
		Cfg:         cfg,
	}

	a.Logger.Debug().
		Str("baseUrl", cfg.API.BaseURL).
		Str("logLevel", cfg.Observability.LogLevel).
		Msg("Application created")
	return a
}
