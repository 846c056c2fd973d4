package importer

import (
	"context"
	"testing"

	"notes-importer/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_IsGM(t *testing.T) {
	assert.True(t, User{Role: RoleGamemaster}.IsGM())
	assert.True(t, User{Role: RoleAssistant}.IsGM())
	assert.False(t, User{Role: RoleTrusted}.IsGM())
	assert.False(t, User{Role: RolePlayer}.IsGM())
	assert.False(t, User{}.IsGM())
}

func TestMenu_Available(t *testing.T) {
	menu := &Menu{}
	menu.Register(MenuAction{Name: "Always"})
	menu.Register(ImportNotesAction(nil))

	notes := reconcile.HostFolder{ID: "f", Kind: reconcile.NotesKind}
	actors := reconcile.HostFolder{ID: "a", Kind: "Actor"}
	gm := User{Role: RoleGamemaster}

	names := func(actions []MenuAction) []string {
		var out []string
		for _, a := range actions {
			out = append(out, a.Name)
		}
		return out
	}
	assert.Equal(t, []string{"Always", ImportActionName}, names(menu.Available(gm, notes)))
	assert.Equal(t, []string{"Always"}, names(menu.Available(gm, actors)))
	assert.Equal(t, []string{"Always"}, names(menu.Available(User{Role: RolePlayer}, notes)))

	_, ok := menu.Lookup("Missing")
	assert.False(t, ok)
}

func TestService_Trigger(t *testing.T) {
	svc, _, _ := newTestService(t, writeNotes(t))
	ctx := context.Background()
	gm := User{Role: RoleGamemaster}

	_, err := svc.Trigger(ctx, "root", gm, "Delete Everything", Fixed("lmop"), nil)
	assert.ErrorIs(t, err, ErrActionNotFound)

	_, err = svc.Trigger(ctx, "root", User{Role: RolePlayer}, ImportActionName, Fixed("lmop"), nil)
	assert.ErrorIs(t, err, ErrActionNotAllowed)

	result, err := svc.Trigger(ctx, "root", gm, ImportActionName, Fixed("lmop"), nil)
	require.NoError(t, err)
	assert.Equal(t, StateDone, result.State)
	assert.Equal(t, 2, result.Documents.Created)
}
