package mocks

import (
	"context"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/domain/dictionary"
	"github.com/stretchr/testify/mock"
)

// DictionaryStore is a mock for repository.DictionaryStore.
type DictionaryStore struct {
	mock.Mock
}

func (m *DictionaryStore) Save(ctx context.Context, path string, dict *dictionary.Dictionary) error {
	args := m.Called(ctx, path, dict)
	return args.Error(0)
}

func (m *DictionaryStore) Load(ctx context.Context, path string) (*dictionary.Dictionary, error) {
	args := m.Called(ctx, path)
	if dict, ok := args.Get(0).(*dictionary.Dictionary); ok {
		return dict, args.Error(1)
	}
	return nil, args.Error(1)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
