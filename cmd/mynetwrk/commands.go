package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/mynetwrk-backend/internal/app"
	"github.com/heartmarshall/mynetwrk-backend/internal/app/seeder"
	"github.com/heartmarshall/mynetwrk-backend/internal/config"
)

// runtime is filled by the root command before any subcommand runs.
type runtime struct {
	configPath string
	cfg        *config.Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:          "mynetwrk",
		Short:        "MyNetwrk personal relationship manager backend",
		Version:      app.BuildVersion(),
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.LoadFrom(rt.configPath)
			if err != nil {
				return err
			}
			rt.cfg = cfg
			rt.logger = app.NewLogger(cfg.Log, os.Stderr)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&rt.configPath, "config", "", "path to YAML config (default $CONFIG_PATH or ./config.yaml)")
	root.SetUsageTemplate(root.UsageTemplate() + "\nEnvironment:\n" + config.Usage() + "\n")

	root.AddCommand(
		newServeCmd(rt),
		newMigrateCmd(rt),
		newSeedCmd(rt),
		newCleanupTokensCmd(rt),
	)
	return root
}

// fail logs err and hands it back to cobra so the process exits non-zero.
func (rt *runtime) fail(msg string, err error) error {
	rt.logger.Error(msg, slog.String("error", err.Error()))
	return err
}

func newServeCmd(rt *runtime) *cobra.Command {
	var opts app.ServeOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.Serve(cmd.Context(), rt.cfg, rt.logger, opts); err != nil {
				return rt.fail("server failed", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Migrate, "migrate", false, "apply pending migrations before serving")
	return cmd
}

func newMigrateCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}
	for _, dir := range []struct{ name, short string }{
		{app.MigrateUp, "Apply all pending migrations"},
		{app.MigrateDown, "Roll back the latest migration"},
		{app.MigrateStatus, "Show migration status"},
	} {
		cmd.AddCommand(&cobra.Command{
			Use:   dir.name,
			Short: dir.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.Migrate(cmd.Context(), rt.cfg, rt.logger, dir.name, cmd.OutOrStdout()); err != nil {
					return rt.fail("migrate "+dir.name, err)
				}
				return nil
			},
		})
	}
	return cmd
}

func newSeedCmd(rt *runtime) *cobra.Command {
	var (
		phases     string
		dryRun     bool
		seederPath string
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed timezones and global interaction types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			seedCfg, err := seeder.LoadConfig(seederPath)
			if err != nil {
				return rt.fail("load seeder config", err)
			}
			if dryRun {
				seedCfg.DryRun = true
			}

			var list []string
			if phases != "" {
				list = strings.Split(phases, ",")
			}
			if err := app.Seed(cmd.Context(), rt.cfg, rt.logger, seedCfg, list); err != nil {
				return rt.fail("seed", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&phases, "phase", "", "comma-separated phases to run (default: all)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "parse datasets without writing to the database")
	cmd.Flags().StringVar(&seederPath, "seeder-config", "", "path to seeder YAML config")
	return cmd
}

func newCleanupTokensCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup-tokens",
		Short: "Delete expired and revoked refresh tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, err := app.CleanupTokens(cmd.Context(), rt.cfg, rt.logger)
			if err != nil {
				return rt.fail("cleanup tokens", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d expired/revoked refresh tokens.\n", n)
			return nil
		},
	}
}
