// Package picker is the terminal adventure selection dialog.
//
// Selector implements importer.Selector with a bubbletea program listing the
// index options. The cursor starts on the adventure a previous import tagged
// on the root folder. Enter imports the highlighted adventure; esc dismisses
// the dialog, which cancels the import.
package picker
