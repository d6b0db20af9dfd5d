// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package commands implements the archivectl operator CLI: schema
// migration, administrator creation and the one-off legacy import.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/char-archive/internal/config"
	"github.com/MKhiriev/char-archive/internal/logger"
	"github.com/MKhiriev/char-archive/internal/service"
	"github.com/MKhiriev/char-archive/internal/store"
	"github.com/MKhiriev/char-archive/models"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// envFiles are loaded in order; variables already set are never overridden.
var envFiles = []string{".env.local", ".env"}

var (
	// Global flags
	dsn        string
	jsonOutput bool
)

var buildInfo = models.NewAppBuildInfo("", "", "")

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "archivectl",
	Short: "Operator tools for the character archive",
	Long: `archivectl manages the character archive database.

Commands:
  migrate      - Apply the embedded schema migrations
  user create  - Register an administrator account
  import       - Load a legacy characters.json export
  version      - Print build information`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvFiles()
	},
}

// Execute runs the root command
func Execute(version, date, commit string) {
	buildInfo = models.NewAppBuildInfo(version, date, commit)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dsn, "db", "", "PostgreSQL connection URL (overrides STORAGE_DB_DATABASE_URI)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

func loadEnvFiles() error {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// toolkit is the slice of the server stack the commands need.
type toolkit struct {
	db       *store.DB
	auth     service.AuthService
	importer service.ImportService
}

func (t *toolkit) Close() error {
	if t == nil || t.db == nil {
		return nil
	}
	return t.db.Close()
}

// openToolkit connects to the database and brings its schema up to date.
// Swapped in tests.
var openToolkit = func(ctx context.Context, log *logger.Logger) (*toolkit, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}
	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}

	users := store.NewUserRepository(db, log)
	sessions := store.NewSessionRepository(db, log)
	characters := store.NewCharacterRepository(db, log)

	return &toolkit{
		db:       db,
		auth:     service.NewAuthService(users, sessions, cfg.App, log),
		importer: service.NewImportService(characters, log),
	}, nil
}

func loadConfig() (*config.StructuredConfig, error) {
	cfg, err := config.GetEnvConfig()
	if err != nil {
		return nil, err
	}
	if dsn != "" {
		cfg.Storage.DB.DSN = dsn
	}
	if err = cfg.ValidateDatabase(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger() *logger.Logger {
	return logger.NewLogger("archivectl")
}
