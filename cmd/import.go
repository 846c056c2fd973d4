package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"notes-importer/core/source"
	"notes-importer/feature/importer"
	"notes-importer/feature/importer/picker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	importFolder    string
	importAdventure string
	importUser      string
	yesConfirm      bool
)

// importCmd runs one import session against a host folder.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import an adventure's notes into a journal folder",
	Long: `Import an adventure's folders and journal entries under a host journal folder.

The folder becomes the adventure's root: it is renamed after the adventure and
every other folder and entry is created or updated beneath it. Entries created
by a previous import of the same adventure are updated in place.

Examples:
  # Pick the adventure interactively
  import --folder 7f9c...

  # Non-interactive
  import --folder 7f9c... --adventure lmop --yes`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importFolder, "folder", "", "Host folder to import into (required)")
	importCmd.Flags().StringVar(&importAdventure, "adventure", "", "Adventure id to import (skips the picker)")
	importCmd.Flags().StringVar(&importUser, "user", importer.RoleGamemaster, "Role the import runs as")
	importCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm overwriting the folder (non-interactive)")
	_ = importCmd.MarkFlagRequired("folder")

	RootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := bootstrap(ctx, true)
	if err != nil {
		return err
	}
	l := a.logger

	var selector importer.Selector = picker.Selector{In: os.Stdin, Out: os.Stdout}
	if importAdventure != "" {
		selector = importer.Fixed(importAdventure)
	}

	svc := importer.NewService(a.cfg.Importer, a.client, a.store, l)
	result, err := svc.Trigger(ctx, importFolder, importer.User{Role: importUser}, importer.ImportActionName,
		confirmSelection(selector), picker.Notifier(os.Stdout))
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if result.Cancelled {
		l.Warn("Import cancelled. No changes were made.")
		return nil
	}
	l.Info("Import report",
		zap.String("adventure", result.Adventure),
		zap.Int("folders_total", result.Folders.Total),
		zap.Int("folders_created", result.Folders.Created),
		zap.Int("folders_updated", result.Folders.Updated),
		zap.Int("documents_total", result.Documents.Total),
		zap.Int("documents_created", result.Documents.Created),
		zap.Int("documents_updated", result.Documents.Updated),
	)
	return nil
}

// confirmSelection asks for confirmation after a selection is made.
// Declining turns the selection into a cancellation.
func confirmSelection(next importer.Selector) importer.Selector {
	return importer.SelectorFunc(func(ctx context.Context, options []source.Option, defaultID string) (string, error) {
		id, err := next.Select(ctx, options, defaultID)
		if err != nil || id == "" {
			return id, err
		}
		if !confirmOverwrite(id) {
			return "", nil
		}
		return id, nil
	})
}

// confirmOverwrite prompts the user for confirmation or uses --yes flag.
func confirmOverwrite(adventure string) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Importing %s renames the folder and overwrites previously imported entries. Type 'yes' to confirm: ", adventure)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
