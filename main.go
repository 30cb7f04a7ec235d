package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"stride/internal/analysis"
	"stride/internal/auth"
	"stride/internal/config"
	"stride/internal/distances"
	"stride/internal/service"
	"stride/internal/store"
	"stride/internal/strava"
	"stride/internal/tui"
	"stride/internal/units"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		fmt.Println("No config file found. Creating example config...")
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		configDir, _ := config.Dir()
		fmt.Printf("\nPlease edit the config file at:\n  %s/config.json\n\n", configDir)
		fmt.Println("You need to add your Strava API credentials.")
		fmt.Println("Get them from: https://www.strava.com/settings/api")
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		configDir, _ := config.Dir()
		fmt.Printf("Config validation failed: %v\n\n", err)
		fmt.Printf("Please edit the config file at:\n  %s/config.json\n", configDir)
		return nil
	}

	logger, logClose, err := openLogger()
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logClose()

	dbPath, err := store.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}
	db, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	for _, d := range cfg.Records.CustomDistances {
		err := db.AddCustomDistance(distances.TargetDistance{Label: d.Label, Meters: d.Meters})
		if err != nil {
			return fmt.Errorf("registering custom distance %q: %w", d.Label, err)
		}
	}

	storedAuth, err := db.GetAuth()
	if errors.Is(err, store.ErrNoAuth) {
		fmt.Println("No authentication found. Starting OAuth flow...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("authentication: %w", err)
		}
		storedAuth, err = db.GetAuth()
		if err != nil {
			return fmt.Errorf("fetching auth after login: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("checking auth: %w", err)
	}

	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	token := &oauth2.Token{
		AccessToken:  storedAuth.AccessToken,
		RefreshToken: storedAuth.RefreshToken,
		Expiry:       storedAuth.ExpiresAt,
	}

	tokenSource := auth.NewTokenSource(oauthCfg, token, func(newToken *oauth2.Token) error {
		return db.UpdateTokens(newToken.AccessToken, newToken.RefreshToken, newToken.Expiry)
	})

	if _, err := tokenSource.Token(); err != nil {
		fmt.Println("Stored token is invalid or expired. Re-authenticating...")
		if err := authenticate(ctx, db, cfg); err != nil {
			return fmt.Errorf("re-authentication: %w", err)
		}
	}

	stravaClient := strava.NewClient(tokenSource)
	syncSvc := service.NewSyncService(stravaClient, db, validationPolicy(cfg), logger)
	querySvc := service.NewQueryService(db)

	app := tui.NewApp(syncSvc, querySvc, tui.Options{
		Units:        units.ParseSystem(cfg.Display.Units),
		RankingLimit: cfg.Records.RankingLimit,
		Window:       cfg.Records.DefaultWindow,
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

// openLogger writes structured logs to a file; stdout belongs to the
// TUI.
func openLogger() (zerolog.Logger, func(), error) {
	dir, err := config.Dir()
	if err != nil {
		return zerolog.Nop(), nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return zerolog.Nop(), nil, err
	}

	path := filepath.Join(dir, "stride.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	logger := zerolog.New(f).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

func validationPolicy(cfg *config.Config) analysis.ValidationPolicy {
	if cfg.Records.ValidationPolicy == "drop" {
		return analysis.DropSamples
	}
	return analysis.RejectActivity
}

func authenticate(ctx context.Context, db *store.DB, cfg *config.Config) error {
	oauthCfg := auth.NewOAuthConfig(auth.Config{
		ClientID:     cfg.Strava.ClientID,
		ClientSecret: cfg.Strava.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d/callback", auth.CallbackPort),
	})

	result, err := auth.Authenticate(ctx, oauthCfg)
	if err != nil {
		return err
	}

	return db.SaveAuth(&store.Auth{
		AthleteID:    result.AthleteID,
		AccessToken:  result.Token.AccessToken,
		RefreshToken: result.Token.RefreshToken,
		ExpiresAt:    result.Token.Expiry,
	})
}
