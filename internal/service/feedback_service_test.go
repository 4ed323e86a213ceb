package service

import (
	"context"
	"path/filepath"
	"testing"

	dom "crewboard/internal/domain"
	"crewboard/internal/repo"
	"crewboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedbackService(t *testing.T) *FeedbackService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedbacks.json")
	return NewFeedbackService(repo.NewFileFeedbackRepo(store.NewFile[[]dom.Feedback](path, nil)))
}

func TestFeedbackCreateTrimsAndLists(t *testing.T) {
	svc := newFeedbackService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "  Title  ", " Message ", " Pedro ")
	require.NoError(t, err)
	assert.Equal(t, "Title", created.Title)
	assert.Equal(t, "Message", created.Message)
	assert.Equal(t, "Pedro", created.Assignee)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])
}

func TestFeedbackUpdatePatch(t *testing.T) {
	svc := newFeedbackService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, "Title", "Message", "Pedro")
	require.NoError(t, err)

	msg := "Revised"
	got, err := svc.Update(ctx, created.ID, FeedbackPatch{Message: &msg})
	require.NoError(t, err)
	assert.Equal(t, "Revised", got.Message)
	assert.Equal(t, "Title", got.Title)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Date, got.Date)
}

func TestFeedbackDeleteNotFound(t *testing.T) {
	svc := newFeedbackService(t)
	assert.ErrorIs(t, svc.Delete(context.Background(), 1), ErrNotFound)
}
