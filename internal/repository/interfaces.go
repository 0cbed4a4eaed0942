package repository

import (
	"context"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/dictionary"
)

// DictionaryStore persists whole dictionaries as files
type DictionaryStore interface {
	Save(ctx context.Context, path string, dict *dictionary.Dictionary) error
	Load(ctx context.Context, path string) (*dictionary.Dictionary, error)
}

// ActivityRepository manages journal persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}
