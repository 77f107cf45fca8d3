package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"bookkeeper/internal/auth"
	"bookkeeper/internal/config"
	"bookkeeper/internal/observability"
	"bookkeeper/internal/repository/postgres"
	postgresLedger "bookkeeper/internal/repository/postgres/ledger"
	"bookkeeper/internal/seed"
	serviceLedger "bookkeeper/internal/service/ledger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

// env bundles what every subcommand needs
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func openEnv(ctx context.Context) (*env, error) {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}

func (e *env) repoConfig() *postgres.RepositoryConfig {
	return &postgres.RepositoryConfig{
		Pool:   e.pool,
		Tables: postgres.NewTableNames(e.cfg.TablePrefix),
		Logger: e.logger,
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Prepare a bookkeeper database",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSchemaCommand(), newUserCommand(), newChartCommand())
	return rootCmd
}

func newSchemaCommand() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Create missing tables for the configured prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.pool.Close()

			if drop {
				// Never drop production data
				if e.cfg.Environment == "prod" {
					return fmt.Errorf("refusing to drop tables in prod")
				}
				if err := postgres.DropAll(ctx, e.pool, postgres.NewTableNames(e.cfg.TablePrefix)); err != nil {
					return err
				}
				e.logger.Info("tables dropped", "prefix", e.cfg.TablePrefix)
			}

			return postgres.EnsureSchema(ctx, e.pool, e.cfg.TablePrefix, e.logger)
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false, "drop all tables first")
	return cmd
}

func newUserCommand() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "user",
		Short: "Register a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.pool.Close()

			tokens, err := auth.NewSessionTokens(e.cfg.SessionSecret, e.cfg.SessionTTL, e.logger)
			if err != nil {
				return err
			}
			sessions := serviceLedger.NewSessionService(postgresLedger.NewUserRepository(e.repoConfig()), tokens, e.logger)

			user, err := sessions.Register(ctx, username, password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (required)")
	cmd.Flags().StringVar(&password, "password", "", "password (required)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newChartCommand() *cobra.Command {
	var userFlag, file string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Create a chart of accounts for a user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(userFlag)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}

			nodes, err := loadChart(file)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			e, err := openEnv(ctx)
			if err != nil {
				return err
			}
			defer e.pool.Close()

			accounts := serviceLedger.NewAccountService(
				postgresLedger.NewAccountRepository(e.repoConfig()),
				postgres.NewTransactionManager(e.pool, e.logger),
				observability.NewCollector("bookkeeper_seed"),
				e.cfg.CollationLanguage,
				e.logger,
			)

			created, err := seed.CreateChart(ctx, accounts, userID, nodes)
			if err != nil {
				return err
			}
			e.logger.Info("chart created", "user_id", userID, "accounts", len(created))
			return nil
		},
	}

	cmd.Flags().StringVar(&userFlag, "user", "", "owner user ID (required)")
	cmd.Flags().StringVar(&file, "file", "", "chart YAML file (default: built-in chart)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

func loadChart(path string) ([]seed.ChartNode, error) {
	if path == "" {
		return seed.DefaultChart()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return seed.ParseChart(f)
}
