package cli

import (
	"fmt"
	"time"

	"jobmatch_backend/internal/auth"
	"jobmatch_backend/internal/database"
	"jobmatch_backend/internal/logger"
	"jobmatch_backend/internal/repositories"
	"jobmatch_backend/internal/services"
	"jobmatch_backend/internal/workers"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// openDB открывает БД из конфига; закрывать через closeDB
func (o *options) openDB() (*gorm.DB, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}

func newMigrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update database tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.AutoMigrate(db); err != nil {
				return err
			}
			logger.Info("Migration completed", "tables", len(database.Models()))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "Migration completed.")
			return err
		},
	}
}

func newExpireCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "expire",
		Short: "Close jobs whose deadline has passed (one sweep)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			jobService := services.NewJobService(repositories.NewJobRepository())
			closed, err := workers.NewJobExpiryWorker(db, jobService, 0).RunOnce(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Closed %d expired jobs.\n", closed)
			return err
		},
	}
}

func newTokenCmd(opts *options) *cobra.Command {
	var (
		userID   string
		userType string
		ttl      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a development token with the configured secret",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userType != auth.UserTypeEmployer && userType != auth.UserTypeWorker {
				return fmt.Errorf("unknown user type %q (use employer or worker)", userType)
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Server.Env == "production" {
				return fmt.Errorf("refusing to sign tokens in production")
			}

			token, err := auth.NewTokenVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer).GenerateToken(userID, userType, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "user id (token subject)")
	cmd.Flags().StringVar(&userType, "type", auth.UserTypeEmployer, "user type (employer, worker)")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", app, version)
			fmt.Fprintf(out, "  commit: %s\n", commit)
			fmt.Fprintf(out, "  built:  %s\n", buildTime)
		},
	}
}

