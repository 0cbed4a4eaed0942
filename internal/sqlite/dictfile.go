package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/rpggio/wordbook/internal/repository"
	"github.com/rpggio/wordbook/internal/sqlite/migrations"
)

// DictionaryStore implements repository.DictionaryStore. Each dictionary is
// a standalone SQLite database file.
type DictionaryStore struct{}

// NewDictionaryStore creates a new DictionaryStore
func NewDictionaryStore() *DictionaryStore {
	return &DictionaryStore{}
}

// Save writes dict to a temporary file next to path and renames it into
// place, so an existing file is either fully replaced or left untouched.
func (s *DictionaryStore) Save(ctx context.Context, path string, dict *dictionary.Dictionary) error {
	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp-"+uuid.NewString())

	if err := writeDictionaryFile(ctx, tmp, dict); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace dictionary file: %w", err)
	}
	return nil
}

func writeDictionaryFile(ctx context.Context, path string, dict *dictionary.Dictionary) (err error) {
	db, err := New(fileDSN(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close dictionary file: %w", cerr)
		}
	}()

	if err := db.Migrate(migrations.Dictionary()); err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT INTO dictionary (id, name) VALUES (1, ?)`, dict.Name()); err != nil {
		return fmt.Errorf("failed to write dictionary name: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO definitions (word, text, entry_date, entry_nanos, accesses)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare definition insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range dict.Entries() {
		if _, err := stmt.ExecContext(ctx, entry.Word, entry.Text, entry.EntryDate.Unix(), entry.EntryDate.Nanosecond(), entry.Accesses); err != nil {
			return fmt.Errorf("failed to write definition %q: %w", entry.Word, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit dictionary file: %w", err)
	}
	return nil
}

// Load reads the dictionary stored at path. A missing file yields
// repository.ErrNotFound; a file that is not a dictionary yields
// repository.ErrCorrupt.
func (s *DictionaryStore) Load(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat dictionary file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", repository.ErrCorrupt, path)
	}

	db, err := New(fileDSN(path))
	if err != nil {
		return nil, corrupt(err)
	}
	defer db.Close()

	var name string
	if err := db.QueryRowContext(ctx, `SELECT name FROM dictionary WHERE id = 1`).Scan(&name); err != nil {
		return nil, corrupt(err)
	}
	dict, err := dictionary.New(name)
	if err != nil {
		return nil, corrupt(err)
	}

	rows, err := db.QueryContext(ctx, `SELECT word, text, entry_date, entry_nanos, accesses FROM definitions`)
	if err != nil {
		return nil, corrupt(err)
	}
	defer rows.Close()

	for rows.Next() {
		var word, text string
		var seconds, nanos int64
		var accesses int
		if err := rows.Scan(&word, &text, &seconds, &nanos, &accesses); err != nil {
			return nil, corrupt(err)
		}
		dict.WeakDefine(word, dictionary.RestoreDefinition(text, time.Unix(seconds, nanos), accesses))
	}
	if err := rows.Err(); err != nil {
		return nil, corrupt(err)
	}

	return dict, nil
}

func corrupt(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", repository.ErrCorrupt, err)
}

var (
	_ repository.DictionaryStore    = (*DictionaryStore)(nil)
	_ repository.ActivityRepository = (*ActivityRepository)(nil)
)
