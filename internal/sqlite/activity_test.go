package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/stretchr/testify/require"
)

func TestActivityRepository_LogList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	entry1 := &activity.ActivityEntry{
		SessionID:    "s1",
		Dictionary:   "Animals",
		ActivityType: activity.TypeDictionaryCreated,
		Summary:      "Created dictionary Animals",
		CreatedAt:    base,
	}
	entry2 := &activity.ActivityEntry{
		SessionID:    "s1",
		Dictionary:   "Animals",
		Word:         strPtr("cat"),
		ActivityType: activity.TypeDefinitionAdded,
		Summary:      "Defined cat",
		Details:      "a feline",
		CreatedAt:    base.Add(time.Minute),
	}

	require.NoError(t, repo.Log(ctx, entry1))
	require.NoError(t, repo.Log(ctx, entry2))
	require.NotZero(t, entry1.ID)
	require.NotEqual(t, entry1.ID, entry2.ID)

	entries, err := repo.List(ctx, activity.ListActivityOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, activity.TypeDefinitionAdded, entries[0].ActivityType)
	require.Equal(t, "cat", *entries[0].Word)
	require.Equal(t, "a feline", entries[0].Details)
	require.True(t, entries[0].CreatedAt.Equal(entry2.CreatedAt))
	require.Equal(t, activity.TypeDictionaryCreated, entries[1].ActivityType)
	require.Nil(t, entries[1].Word)
}

func TestActivityRepository_Filters(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewActivityRepository(db)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []*activity.ActivityEntry{
		{SessionID: "s1", Dictionary: "Animals", Word: strPtr("cat"), ActivityType: activity.TypeDefinitionAdded, Summary: "1"},
		{SessionID: "s1", Dictionary: "Animals", Word: strPtr("dog"), ActivityType: activity.TypeDefinitionAdded, Summary: "2"},
		{SessionID: "s1", Dictionary: "Animals", Word: strPtr("cat"), ActivityType: activity.TypeDefinitionRemoved, Summary: "3"},
		{SessionID: "s2", Dictionary: "Plants", ActivityType: activity.TypeDictionarySaved, Summary: "4"},
	}
	for i, entry := range logs {
		entry.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, repo.Log(ctx, entry))
	}

	entries, err := repo.List(ctx, activity.ListActivityOptions{Dictionary: "Plants"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "s2", entries[0].SessionID)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Dictionary: "Animals", Word: strPtr("cat")})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "3", entries[0].Summary)
	require.Equal(t, "1", entries[1].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Word: strPtr("dog")})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, activity.TypeDefinitionAdded, entries[0].ActivityType)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Limit: 2})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "4", entries[0].Summary)
	require.Equal(t, "3", entries[1].Summary)

	entries, err = repo.List(ctx, activity.ListActivityOptions{Word: strPtr("eel")})
	require.NoError(t, err)
	require.Empty(t, entries)
}

func strPtr(s string) *string {
	return &s
}
