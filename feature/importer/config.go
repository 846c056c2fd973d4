package importer

// Config holds configuration for the notes importer.
type Config struct {
	// NotesDirectory is where adv_index.json and adventures/ are read from.
	// It may be a local directory, an http(s) URL prefix or s3://bucket/prefix.
	NotesDirectory string `mapstructure:"notes_directory" default:"imported-notes"`
}
