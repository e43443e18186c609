package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vladislavdragonenkov/orders/internal/storage/postgres"
	"github.com/vladislavdragonenkov/orders/internal/version"
)

const defaultTimeout = 30 * time.Second

// migrator — операции над схемой, которые нужны CLI.
type migrator interface {
	MigrateUp(ctx context.Context, steps int) (int, error)
	MigrateDown(ctx context.Context, steps int) (int, error)
	MigrationStatus(ctx context.Context) (postgres.MigrationStatus, error)
	Close() error
}

type openFunc func(ctx context.Context, dsn string) (migrator, error)

func openPostgres(ctx context.Context, dsn string) (migrator, error) {
	return postgres.Open(ctx, dsn)
}

type options struct {
	dsn     string
	timeout time.Duration
}

func newRootCmd(open openFunc) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage orders PostgreSQL schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "PostgreSQL DSN (fallback: ORDERS_POSTGRES_DSN)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "overall command timeout")

	cmd.AddCommand(newUpCmd(opts, open))
	cmd.AddCommand(newDownCmd(opts, open))
	cmd.AddCommand(newStatusCmd(opts, open))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newUpCmd(opts *options, open openFunc) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, opts, open, func(ctx context.Context, m migrator) error {
				applied, err := m.MigrateUp(ctx, steps)
				if err != nil {
					return fmt.Errorf("migrate up failed: %w", err)
				}
				return printStatus(ctx, cmd, m, fmt.Sprintf("migrate up ok: applied_now=%d", applied))
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 0, "number of migrations to apply (0 = all)")
	return cmd
}

func newDownCmd(opts *options, open openFunc) *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, opts, open, func(ctx context.Context, m migrator) error {
				reverted, err := m.MigrateDown(ctx, steps)
				if err != nil {
					return fmt.Errorf("migrate down failed: %w", err)
				}
				return printStatus(ctx, cmd, m, fmt.Sprintf("migrate down ok: reverted_now=%d", reverted))
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newStatusCmd(opts *options, open openFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show schema version and pending migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, opts, open, func(ctx context.Context, m migrator) error {
				return printStatus(ctx, cmd, m, "migration status")
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show build version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "migrate %s\n", version.String())
			return nil
		},
	}
}

func withMigrator(cmd *cobra.Command, opts *options, open openFunc, fn func(ctx context.Context, m migrator) error) error {
	dsn := strings.TrimSpace(opts.dsn)
	if dsn == "" {
		dsn = strings.TrimSpace(os.Getenv("ORDERS_POSTGRES_DSN"))
	}
	if dsn == "" {
		return fmt.Errorf("ORDERS_POSTGRES_DSN (or --dsn) is required")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
	defer cancel()

	m, err := open(ctx, dsn)
	if err != nil {
		return fmt.Errorf("open postgres store: %w", err)
	}
	defer m.Close()

	return fn(ctx, m)
}

func printStatus(ctx context.Context, cmd *cobra.Command, m migrator, prefix string) error {
	status, err := m.MigrationStatus(ctx)
	if err != nil {
		return fmt.Errorf("migration status failed: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "%s: version=%d applied=%d pending=%d\n", prefix, status.Version, status.Applied, len(status.Pending))
	for _, p := range status.Pending {
		_, _ = fmt.Fprintf(out, "  pending %04d_%s\n", p.Version, p.Name)
	}
	return nil
}

func main() {
	if err := newRootCmd(openPostgres).ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
