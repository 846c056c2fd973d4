package cmd

import (
	"fmt"

	"notes-importer/feature/importer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// adventuresCmd lists the adventures of the notes directory.
var adventuresCmd = &cobra.Command{
	Use:   "adventures",
	Short: "List the adventures available for import",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}

		svc := importer.NewService(a.cfg.Importer, a.client, a.store, a.logger)
		options, err := svc.ListAdventures(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list adventures: %w", err)
		}

		a.logger.Info("Adventure index loaded",
			zap.String("notes_directory", a.cfg.Importer.NotesDirectory),
			zap.Int("count", len(options)),
		)
		fmt.Printf("\n%-24s %s\n", "ID", "NAME")
		for _, o := range options {
			fmt.Printf("%-24s %s\n", o.ID, o.Name)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(adventuresCmd)
}
