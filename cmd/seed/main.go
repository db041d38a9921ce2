package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"devboost/internal/config"
	"devboost/internal/db"
	"devboost/internal/logging"
	"devboost/internal/repository"
	"devboost/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var (
		usersFile string
		dsn       string
		reset     bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the account roster into MySQL",
		Long: `seed migrates the accounts table and inserts every user listed in the
roster file. Accounts whose email already exists are left untouched.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if err := runSeed(cmd.Context(), logger, usersFile, dsn, reset); err != nil {
				logger.Error("seed failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&usersFile, "users-file", cfg.UsersFile, "YAML roster to load")
	cmd.Flags().StringVar(&dsn, "dsn", cfg.MySQLDSN, "MySQL data source name")
	cmd.Flags().BoolVar(&reset, "reset", false, "drop the accounts table before migrating")

	return cmd
}

func runSeed(ctx context.Context, logger *zap.Logger, usersFile, dsn string, reset bool) error {
	gormDB, err := db.NewMySQL(dsn)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	if reset {
		logger.Warn("dropping accounts table")
	}
	if err := db.Migrate(gormDB, reset); err != nil {
		return err
	}
	logger.Info("database migrations completed")

	users, err := config.LoadUsers(usersFile)
	if err != nil {
		return err
	}

	created, err := service.NewAccountService(repository.NewAccountRepository(gormDB)).SeedAccounts(ctx, users)
	if err != nil {
		return err
	}

	logger.Info("accounts seeded",
		zap.String("users_file", usersFile),
		zap.Int("created", created),
		zap.Int("already_present", len(users)-created),
	)
	return nil
}
