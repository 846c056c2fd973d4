package reconcile

import (
	"context"
	"fmt"
)

// memStore is an in-memory host store for tests.
type memStore struct {
	seq     int
	folders []HostFolder
	docs    []HostDocument

	folderUpdateCalls int
	folderCreateCalls int
	docCreateCalls    int
	docUpdateCalls    int

	lastFolderUpdates []FolderWrite
	lastFolderCreates []FolderWrite
	lastDocUpdates    []DocumentWrite

	failFolderUpdate error
	failFolderCreate error
	failDocCreate    error
	failDocUpdate    error
}

func (m *memStore) nextID() string {
	m.seq++
	return fmt.Sprintf("host-%d", m.seq)
}

func (m *memStore) ListFolders(ctx context.Context, kind string) ([]HostFolder, error) {
	var out []HostFolder
	for _, f := range m.folders {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out, nil
}

func (m *memStore) UpdateFolders(ctx context.Context, writes []FolderWrite) error {
	m.folderUpdateCalls++
	m.lastFolderUpdates = writes
	if m.failFolderUpdate != nil {
		return m.failFolderUpdate
	}
	for _, w := range writes {
		for i := range m.folders {
			if m.folders[i].ID != w.ID {
				continue
			}
			m.folders[i].Name = w.Name
			m.folders[i].ExternalID = w.ExternalID
			if w.ParentID != nil {
				m.folders[i].ParentID = w.ParentID
			}
		}
	}
	return nil
}

func (m *memStore) CreateFolders(ctx context.Context, writes []FolderWrite) ([]HostFolder, error) {
	m.folderCreateCalls++
	m.lastFolderCreates = writes
	if m.failFolderCreate != nil {
		return nil, m.failFolderCreate
	}
	created := make([]HostFolder, 0, len(writes))
	batch := make(map[string]string, len(writes))
	for _, w := range writes {
		f := HostFolder{
			ID:         m.nextID(),
			Name:       w.Name,
			Kind:       w.Kind,
			ParentID:   w.ParentID,
			ExternalID: w.ExternalID,
		}
		if f.ParentID == nil && w.ParentExternalID != "" {
			if id, ok := batch[w.ParentExternalID]; ok {
				f.ParentID = &id
			}
		}
		batch[w.ExternalID] = f.ID
		m.folders = append(m.folders, f)
		created = append(created, f)
	}
	return created, nil
}

func (m *memStore) ListDocuments(ctx context.Context) ([]HostDocument, error) {
	return append([]HostDocument(nil), m.docs...), nil
}

func (m *memStore) CreateDocuments(ctx context.Context, writes []DocumentWrite) ([]HostDocument, error) {
	m.docCreateCalls++
	if m.failDocCreate != nil {
		return nil, m.failDocCreate
	}
	created := make([]HostDocument, 0, len(writes))
	for _, w := range writes {
		d := HostDocument{
			ID:         m.nextID(),
			Name:       w.Name,
			Content:    w.Content,
			FolderID:   w.FolderID,
			ExternalID: w.ExternalID,
		}
		m.docs = append(m.docs, d)
		created = append(created, d)
	}
	return created, nil
}

func (m *memStore) UpdateDocuments(ctx context.Context, writes []DocumentWrite) error {
	m.docUpdateCalls++
	m.lastDocUpdates = writes
	if m.failDocUpdate != nil {
		return m.failDocUpdate
	}
	for _, w := range writes {
		for i := range m.docs {
			if m.docs[i].ID != w.ID {
				continue
			}
			m.docs[i].Name = w.Name
			m.docs[i].Content = w.Content
			if w.FolderID != nil {
				m.docs[i].FolderID = w.FolderID
			}
			m.docs[i].ExternalID = w.ExternalID
		}
	}
	return nil
}

func (m *memStore) docByTag(tag string) []HostDocument {
	var out []HostDocument
	for _, d := range m.docs {
		if d.ExternalID == tag {
			out = append(out, d)
		}
	}
	return out
}

func (m *memStore) folderByTag(tag string) []HostFolder {
	var out []HostFolder
	for _, f := range m.folders {
		if f.ExternalID == tag {
			out = append(out, f)
		}
	}
	return out
}

func strPtr(s string) *string {
	return &s
}
