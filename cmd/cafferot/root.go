package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/cafferot/internal/config"
	"github.com/jask/cafferot/internal/database"
	"github.com/jask/cafferot/internal/database/repository"
	"github.com/jask/cafferot/internal/service"
	"github.com/jask/cafferot/internal/tui"
	"github.com/jask/cafferot/internal/ui"
)

var version = "0.3.0"

var (
	configPath string
	dbPath     string
	darkMode   bool
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "cafferot",
		Short:         "cafferot — your café and the cafés around it",
		Long:          ui.Brand.Sprint(ui.Cup+" cafferot") + " — browse the café map in your terminal",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runMap(cmd.Context(), cfg)
		},
	}
	root.SetVersionTemplate("cafferot {{ .Version }}\n")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/cafferot/config.toml)")
	root.PersistentFlags().StringVar(&dbPath, "db", "", "sqlite database path")
	root.PersistentFlags().BoolVar(&darkMode, "dark", false, "use the dark palette")

	root.AddCommand(
		seedCmd(),
		listCmd(),
		resetCmd(),
	)
	return root
}

// loadConfig applies flag overrides on top of file and env config.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	if configPath != "" {
		if err := os.Setenv("CAFFEROT_CONFIG", configPath); err != nil {
			return config.Config{}, fmt.Errorf("set config path: %w", err)
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}
	if cmd.Flags().Changed("dark") {
		cfg.UI.Dark = darkMode
	}
	return cfg, nil
}

// openStore opens the database, applies migrations and seeds the demo map.
func openStore(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	db, err := database.OpenMigrated(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	if err := database.SeedDefaults(ctx, db, cfg.UI.OwnerID); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed defaults: %w", err)
	}
	return db, nil
}

func runMap(ctx context.Context, cfg config.Config) error {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.Path), 0o755); err != nil {
		return fmt.Errorf("mkdir log dir: %w", err)
	}
	logFile, err := tea.LogToFile(cfg.Log.Path, "cafferot")
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()

	db, err := openStore(ctx, cfg)
	if err != nil {
		log.Printf("open store: %v", err)
		return err
	}
	defer db.Close()

	cafes := repository.NewCafeRepo(db)
	services := tui.Services{
		Feed: &service.Feed{Cafes: cafes, OwnerID: cfg.UI.OwnerID},
		Actions: &service.Actions{
			DB:        db,
			Cafes:     cafes,
			Cafferots: repository.NewCafferotRepo(db),
			Events:    repository.NewEventRepo(db),
		},
	}
	log.Printf("starting map for owner %q (db %s)", cfg.UI.OwnerID, cfg.Database.Path)

	p := tea.NewProgram(tui.New(ctx, cfg, services),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		log.Printf("program: %v", err)
		return err
	}
	return nil
}
