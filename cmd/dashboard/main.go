package main

import (
	"os"

	"github.com/campushub/dashboard/internal/app/notify"
	"github.com/campushub/dashboard/internal/app/stores"
	"github.com/campushub/dashboard/internal/config"
	"github.com/campushub/dashboard/internal/pkg/auth"
	"github.com/campushub/dashboard/internal/pkg/logger"
	"github.com/campushub/dashboard/internal/seed"
	"github.com/campushub/dashboard/internal/storage"
)

// main bootstraps the dashboard state layer: configuration, logging, the
// persistence shim and the three stores, seeded on first run. Consumers
// (route and presentation layers) attach through the store interfaces; none
// ship with this module.
func main() {
	configPath := config.GetEnv("CONFIG_PATH", "config.yml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})
	lgr := logger.Default()

	var store storage.Storage
	if cfg.Storage.Enabled {
		store = storage.Open(cfg.Storage.Dir, lgr)
	} else {
		store = storage.NewMemoryStorage()
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	notifier := notify.NewLogNotifier(logger.With("notifications"))

	authStore := stores.NewAuthStore(store, jwtService, seed.DefaultUsers(lgr), lgr)

	adminInitial := seed.DefaultAdminState()
	repInitial := seed.DefaultRepState()
	if !cfg.Seed.DemoData {
		adminInitial = seed.EmptyAdminState()
		repInitial = seed.EmptyRepState()
	}
	adminStore := stores.NewAdminStore(store, notifier, logger.With("admin_store"), adminInitial)
	repStore := stores.NewRepStore(store, notifier, logger.With("rep_store"), repInitial)

	adminState := adminStore.State()
	repState := repStore.State()
	event := lgr.Info().
		Int("representatives", len(adminState.Representatives)).
		Int("wallPosts", len(adminState.WallPosts)).
		Int("events", len(adminState.Events)).
		Int("collaborations", len(adminState.Collaborations)).
		Int("repEvents", len(repState.Events)).
		Int("users", len(authStore.Users()))
	if current := authStore.CurrentUser(); current != nil {
		event = event.Str("session", current.Email)
	}
	event.Msg("dashboard state ready")
}
