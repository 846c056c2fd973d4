package hoststore

// Entity kinds recorded on external tags.
const (
	KindFolder       = "Folder"
	KindJournalEntry = "JournalEntry"
)

// Folder represents the host 'folders' table.
type Folder struct {
	ID       string  `gorm:"column:id;primaryKey;size:36"`
	Name     string  `gorm:"column:name;size:255"`
	Type     string  `gorm:"column:type;size:32;index"`
	ParentID *string `gorm:"column:parent_id;size:36"`
}

// TableName overrides the table name for folders.
func (Folder) TableName() string {
	return "folders"
}

// JournalEntry represents the host 'journal_entries' table.
type JournalEntry struct {
	ID       string  `gorm:"column:id;primaryKey;size:36"`
	Name     string  `gorm:"column:name;size:255"`
	Content  string  `gorm:"column:content;type:text"`
	FolderID *string `gorm:"column:folder_id;size:36;index"`
}

// TableName overrides the table name for journal entries.
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// ExternalTag records the external id an import wrote for a host entity.
// Rows are scoped by namespace so other writers never see or clobber them.
type ExternalTag struct {
	Namespace  string `gorm:"column:namespace;primaryKey;size:64"`
	EntityKind string `gorm:"column:entity_kind;primaryKey;size:32"`
	EntityID   string `gorm:"column:entity_id;primaryKey;size:36"`
	ExternalID string `gorm:"column:external_id;size:255;index"`
}

// TableName overrides the table name for external tags.
func (ExternalTag) TableName() string {
	return "external_tags"
}

// RequiredColumns lists the columns the store reads and writes, by table.
var RequiredColumns = map[string][]string{
	Folder{}.TableName():       {"id", "name", "type", "parent_id"},
	JournalEntry{}.TableName(): {"id", "name", "content", "folder_id"},
	ExternalTag{}.TableName():  {"namespace", "entity_kind", "entity_id", "external_id"},
}

// folderRow is a folder joined with its tag.
type folderRow struct {
	ID         string
	Name       string
	Type       string
	ParentID   *string
	ExternalID *string
}

// journalRow is a journal entry joined with its tag.
type journalRow struct {
	ID         string
	Name       string
	Content    string
	FolderID   *string
	ExternalID *string
}
