package checks

import (
	"fmt"

	"notes-importer/core/source"
)

// Finding kinds reported by LintBundle.
const (
	FindingDuplicateFolder  = "duplicate_folder"
	FindingDuplicateJournal = "duplicate_journal"
	FindingMissingRoot      = "missing_root"
	FindingMultipleRoots    = "multiple_roots"
	FindingParentOrder      = "parent_after_child"
	FindingUnknownParent    = "unknown_parent"
	FindingUnknownFolder    = "unknown_folder"
)

// Finding is one problem found in a bundle.
type Finding struct {
	Kind    string `json:"kind"`
	ID      string `json:"id,omitempty"`
	Message string `json:"message"`
}

// LintBundle reports the bundle shapes an import handles poorly.
// Imports never enforce these; a parent listed after its child leaves the child
// unparented, and an unknown folder leaves the journal entry unfiled.
func LintBundle(bundle *source.AdventureBundle) []Finding {
	findings := []Finding{}

	folderIDs := make(map[string]struct{}, len(bundle.Folders))
	for _, f := range bundle.Folders {
		if _, dup := folderIDs[f.ID]; dup {
			findings = append(findings, Finding{
				Kind:    FindingDuplicateFolder,
				ID:      f.ID,
				Message: fmt.Sprintf("folder id %s is used more than once", f.ID),
			})
		}
		folderIDs[f.ID] = struct{}{}
	}

	var roots []string
	seen := make(map[string]struct{}, len(bundle.Folders))
	for _, f := range bundle.Folders {
		if f.IsRoot() {
			roots = append(roots, f.ID)
		} else if _, ok := seen[*f.ParentID]; !ok {
			if _, defined := folderIDs[*f.ParentID]; defined {
				findings = append(findings, Finding{
					Kind:    FindingParentOrder,
					ID:      f.ID,
					Message: fmt.Sprintf("folder %s is listed before its parent %s", f.ID, *f.ParentID),
				})
			} else {
				findings = append(findings, Finding{
					Kind:    FindingUnknownParent,
					ID:      f.ID,
					Message: fmt.Sprintf("folder %s has undefined parent %s", f.ID, *f.ParentID),
				})
			}
		}
		seen[f.ID] = struct{}{}
	}
	switch {
	case len(roots) == 0 && len(bundle.Folders) > 0:
		findings = append(findings, Finding{
			Kind:    FindingMissingRoot,
			Message: "no folder has a null parent",
		})
	case len(roots) > 1:
		findings = append(findings, Finding{
			Kind:    FindingMultipleRoots,
			Message: fmt.Sprintf("%d folders have a null parent, only %s maps to the import root", len(roots), roots[0]),
		})
	}

	journalIDs := make(map[string]struct{}, len(bundle.Journals))
	for _, j := range bundle.Journals {
		if _, dup := journalIDs[j.ID]; dup {
			findings = append(findings, Finding{
				Kind:    FindingDuplicateJournal,
				ID:      j.ID,
				Message: fmt.Sprintf("journal id %s is used more than once", j.ID),
			})
		}
		journalIDs[j.ID] = struct{}{}

		if _, ok := folderIDs[j.FolderID]; !ok {
			findings = append(findings, Finding{
				Kind:    FindingUnknownFolder,
				ID:      j.ID,
				Message: fmt.Sprintf("journal %s points at undefined folder %s", j.ID, j.FolderID),
			})
		}
	}

	return findings
}
