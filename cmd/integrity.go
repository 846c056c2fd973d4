package cmd

import (
	"context"

	"notes-importer/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the notes directory and the host schema",
	Long:  `Fetches and lints every adventure bundle of the notes directory and checks the host tables the importer writes to.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// indexCmd represents the integrity index command
var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Check the adventure index and bundles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the host database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(indexCmd, schemaCmd)
}

func runIntegrityChecks(ctx context.Context, runIndex, runSchema bool) error {
	a, err := bootstrap(ctx, false)
	if err != nil {
		return err
	}
	logg := a.logger
	svc := integrity.NewService(a.cfg.Importer.NotesDirectory, a.client, a.db, logg)

	if runIndex {
		logg.Info("Checking adventure index...", zap.String("notes_directory", a.cfg.Importer.NotesDirectory))
		report, err := svc.CheckIndex(ctx)
		if err != nil {
			return err
		}

		if report.Matched {
			logg.Info("All adventures are reachable and well formed.", zap.Int("adventures", len(report.Adventures)))
		}
		for _, adv := range report.Adventures {
			if adv.Error != "" {
				logg.Error("Adventure bundle unreachable", zap.String("adventure", adv.ID), zap.String("error", adv.Error))
				continue
			}
			for _, f := range adv.Findings {
				logg.Warn("Bundle finding",
					zap.String("adventure", adv.ID),
					zap.String("kind", f.Kind),
					zap.String("message", f.Message),
				)
			}
		}
	}

	if runSchema {
		logg.Info("Checking host schema integrity...", zap.String("driver", a.cfg.Database.Driver))
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}

		if report.Matched {
			logg.Info("Host schema matches expected definition.")
		} else {
			logg.Warn("Host schema mismatches found")
			for table, tblReport := range report.Tables {
				if tblReport.Status == "ok" {
					continue
				}
				if len(tblReport.MissingColumns) > 0 {
					logg.Warn("Missing Columns", zap.String("table", table), zap.Strings("columns", tblReport.MissingColumns))
				}
				if len(tblReport.TypeMismatches) > 0 {
					logg.Warn("Type Mismatches", zap.String("table", table), zap.Strings("mismatches", tblReport.TypeMismatches))
				}
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}
	return nil
}
