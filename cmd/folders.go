package cmd

import (
	"fmt"

	"notes-importer/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var folderName string

// foldersCmd is the parent command for host folder operations.
var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Inspect and create host journal folders",
}

// foldersListCmd lists journal folders with their import tags.
var foldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal folders and the external ids imports tagged them with",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}

		folders, err := a.store.ListFolders(cmd.Context(), reconcile.NotesKind)
		if err != nil {
			return err
		}

		fmt.Printf("\n%-36s %-36s %-16s %s\n", "ID", "PARENT", "EXTERNAL ID", "NAME")
		for _, f := range folders {
			parent := "-"
			if f.ParentID != nil {
				parent = *f.ParentID
			}
			tag := f.ExternalID
			if tag == "" {
				tag = "-"
			}
			fmt.Printf("%-36s %-36s %-16s %s\n", f.ID, parent, tag, f.Name)
		}
		return nil
	},
}

// foldersCreateCmd creates an untagged journal folder to import into.
var foldersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a journal folder to import into",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(cmd.Context(), true)
		if err != nil {
			return err
		}

		created, err := a.store.CreateFolders(cmd.Context(), []reconcile.FolderWrite{
			{Name: folderName, Kind: reconcile.NotesKind},
		})
		if err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}

		a.logger.Info("Folder created", zap.String("id", created[0].ID), zap.String("name", folderName))
		fmt.Println(created[0].ID)
		return nil
	},
}

func init() {
	foldersCreateCmd.Flags().StringVar(&folderName, "name", "Adventures", "Folder name")
	foldersCmd.AddCommand(foldersListCmd, foldersCreateCmd)
	RootCmd.AddCommand(foldersCmd)
}
