package activity_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rpggio/wordbook/internal/domain/activity"
	"github.com/rpggio/wordbook/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_LogAndList(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	entry := &activity.ActivityEntry{
		SessionID:    "sess1",
		Dictionary:   "Test",
		ActivityType: activity.TypeDefinitionAdded,
		Summary:      "added",
	}

	repo.On("Log", ctx, entry).Return(nil)
	repo.On("List", ctx, activity.ListActivityOptions{Dictionary: "Test"}).Return([]activity.ActivityEntry{*entry}, nil)

	svc := activity.NewService(repo, nil)
	require.NoError(t, svc.LogActivity(ctx, entry))
	require.False(t, entry.CreatedAt.IsZero())

	entries, err := svc.GetRecentActivity(ctx, activity.ListActivityOptions{Dictionary: "Test"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	repo.AssertExpectations(t)
}

func TestActivityService_LogValidation(t *testing.T) {
	svc := activity.NewService(&mocks.ActivityRepository{}, nil)
	require.ErrorIs(t, svc.LogActivity(context.Background(), nil), activity.ErrInvalidInput)
	require.ErrorIs(t, svc.LogActivity(context.Background(), &activity.ActivityEntry{}), activity.ErrInvalidInput)
}

func TestActivityService_LogWrapsRepositoryError(t *testing.T) {
	ctx := context.Background()
	repoErr := errors.New("disk full")

	repo := &mocks.ActivityRepository{}
	repo.On("Log", ctx, mock.Anything).Return(repoErr)

	svc := activity.NewService(repo, nil)
	err := svc.LogActivity(ctx, &activity.ActivityEntry{ActivityType: activity.TypeDictionarySaved})
	require.ErrorIs(t, err, repoErr)
}
