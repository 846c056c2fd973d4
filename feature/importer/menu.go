package importer

import (
	"context"

	"notes-importer/core/reconcile"
)

// User roles known to the host.
const (
	RolePlayer     = "player"
	RoleTrusted    = "trusted"
	RoleAssistant  = "assistant"
	RoleGamemaster = "gamemaster"
)

// ImportActionName is the menu entry that starts an import.
const ImportActionName = "Import Notes"

// User is the host user opening a folder menu.
type User struct {
	Role string `json:"role"`
}

// IsGM reports whether the user has game master privileges.
func (u User) IsGM() bool {
	return u.Role == RoleAssistant || u.Role == RoleGamemaster
}

// MenuAction is an entry contributed to a folder's context menu.
type MenuAction struct {
	Name string `json:"name"`
	Icon string `json:"icon"`

	// Condition decides whether the entry is shown for a user and folder.
	Condition func(user User, folder reconcile.HostFolder) bool `json:"-"`

	// Callback runs the action on the folder.
	Callback func(ctx context.Context, folder reconcile.HostFolder, selector Selector, notifier Notifier) (*Result, error) `json:"-"`
}

// Menu holds the folder context menu entries.
type Menu struct {
	actions []MenuAction
}

// Register appends an entry to the menu.
func (m *Menu) Register(action MenuAction) {
	m.actions = append(m.actions, action)
}

// Available returns the entries whose condition holds, in registration order.
func (m *Menu) Available(user User, folder reconcile.HostFolder) []MenuAction {
	var out []MenuAction
	for _, a := range m.actions {
		if a.Condition == nil || a.Condition(user, folder) {
			out = append(out, a)
		}
	}
	return out
}

// Lookup returns the entry registered under name.
func (m *Menu) Lookup(name string) (MenuAction, bool) {
	for _, a := range m.actions {
		if a.Name == name {
			return a, true
		}
	}
	return MenuAction{}, false
}

// ImportNotesAction returns the menu entry starting an import into a notes folder.
func ImportNotesAction(svc *Service) MenuAction {
	return MenuAction{
		Name: ImportActionName,
		Icon: "fas fa-file-import",
		Condition: func(user User, folder reconcile.HostFolder) bool {
			return user.IsGM() && folder.Kind == reconcile.NotesKind
		},
		Callback: func(ctx context.Context, folder reconcile.HostFolder, selector Selector, notifier Notifier) (*Result, error) {
			return svc.Import(ctx, folder, selector, notifier)
		},
	}
}
