package model

// Category is a named grouping of items. Categories are seeded out of band
// (the init subcommand); no route creates, edits or deletes them.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NameMaxLen is the maximum category or item name length.
const NameMaxLen = 80
