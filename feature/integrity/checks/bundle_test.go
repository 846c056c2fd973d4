package checks

import (
	"testing"

	"notes-importer/core/reconcile"
	"notes-importer/core/source"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func kinds(findings []Finding) []string {
	out := []string{}
	for _, f := range findings {
		out = append(out, f.Kind)
	}
	return out
}

func TestLintBundle(t *testing.T) {
	tests := []struct {
		name     string
		folders  []reconcile.FolderRecord
		journals []reconcile.DocumentRecord
		want     []string
	}{
		{
			name: "clean",
			folders: []reconcile.FolderRecord{
				{ID: "F0"},
				{ID: "F1", ParentID: strPtr("F0")},
			},
			journals: []reconcile.DocumentRecord{{ID: "J1", FolderID: "F1"}},
			want:     []string{},
		},
		{
			name: "duplicate ids",
			folders: []reconcile.FolderRecord{
				{ID: "F0"},
				{ID: "F1", ParentID: strPtr("F0")},
				{ID: "F1", ParentID: strPtr("F0")},
			},
			journals: []reconcile.DocumentRecord{
				{ID: "J1", FolderID: "F1"},
				{ID: "J1", FolderID: "F1"},
			},
			want: []string{FindingDuplicateFolder, FindingDuplicateJournal},
		},
		{
			name: "parent after child",
			folders: []reconcile.FolderRecord{
				{ID: "F0"},
				{ID: "F2", ParentID: strPtr("F1")},
				{ID: "F1", ParentID: strPtr("F0")},
			},
			want: []string{FindingParentOrder},
		},
		{
			name: "unknown parent and folder",
			folders: []reconcile.FolderRecord{
				{ID: "F0"},
				{ID: "F1", ParentID: strPtr("F9")},
			},
			journals: []reconcile.DocumentRecord{{ID: "J1", FolderID: "F8"}},
			want:     []string{FindingUnknownParent, FindingUnknownFolder},
		},
		{
			name: "no root",
			folders: []reconcile.FolderRecord{
				{ID: "F1", ParentID: strPtr("F9")},
			},
			want: []string{FindingUnknownParent, FindingMissingRoot},
		},
		{
			name: "two roots",
			folders: []reconcile.FolderRecord{
				{ID: "F0"},
				{ID: "G0"},
			},
			want: []string{FindingMultipleRoots},
		},
		{
			name: "empty bundle",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := LintBundle(&source.AdventureBundle{Folders: tt.folders, Journals: tt.journals})
			assert.Equal(t, tt.want, kinds(findings))
		})
	}
}
