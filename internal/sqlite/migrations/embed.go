// Package migrations embeds the SQL schemas for dictionary files and the journal.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed journal/*.sql
var journalFS embed.FS

//go:embed dictionary/*.sql
var dictionaryFS embed.FS

// Journal returns the journal database migrations.
func Journal() fs.FS {
	return sub(journalFS, "journal")
}

// Dictionary returns the dictionary file migrations.
func Dictionary() fs.FS {
	return sub(dictionaryFS, "dictionary")
}

func sub(fsys embed.FS, dir string) fs.FS {
	s, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return s
}
