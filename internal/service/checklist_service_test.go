package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	dom "crewboard/internal/domain"
	"crewboard/internal/repo"
	"crewboard/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChecklistService(t *testing.T) *ChecklistService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checklists.json")
	r := repo.NewFileChecklistRepo(store.NewFile[[]dom.Checklist](path, nil))
	return NewChecklistService(r)
}

func mustCreate(t *testing.T, svc *ChecklistService, title, assignee string, items []string) dom.Checklist {
	t.Helper()
	c, err := svc.Create(context.Background(), title, "", assignee, items)
	require.NoError(t, err)
	return c
}

func getByID(t *testing.T, svc *ChecklistService, id int64) dom.Checklist {
	t.Helper()
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	for _, c := range list {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("checklist %d not in list", id)
	return dom.Checklist{}
}

func TestToggleItemProgression(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Setup laptop", "Ana", []string{"Unbox", "Install OS", "Test"})

	res, err := svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 33, res.Progress)
	assert.False(t, res.Completed)

	_, err = svc.ToggleItem(ctx, c.ID, 1, true)
	require.NoError(t, err)
	res, err = svc.ToggleItem(ctx, c.ID, 2, true)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Progress)
	assert.True(t, res.Completed)

	stored := getByID(t, svc, c.ID)
	assert.True(t, stored.Completed)
	require.NotNil(t, stored.CompletedDate)

	// Un-toggling any item leaves the complete state and clears the date.
	res, err = svc.ToggleItem(ctx, c.ID, 2, false)
	require.NoError(t, err)
	assert.Equal(t, 67, res.Progress)
	assert.False(t, res.Completed)

	stored = getByID(t, svc, c.ID)
	assert.False(t, stored.Completed)
	assert.Nil(t, stored.CompletedDate)
}

func TestToggleItemIsIdempotent(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Docs", "Ana", []string{"Read handbook", "Sign NDA"})

	_, err := svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	res, err := svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Progress)

	stored := getByID(t, svc, c.ID)
	assert.Equal(t, []int{0}, stored.ItemsCompleted)

	// Un-toggling an item that is not in the set is a no-op.
	res, err = svc.ToggleItem(ctx, c.ID, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Progress)
	stored = getByID(t, svc, c.ID)
	assert.Equal(t, []int{0}, stored.ItemsCompleted)
}

func TestToggleItemDoesNotRefreshCompletedDate(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "One step", "Ana", []string{"Do it"})

	_, err := svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	first := getByID(t, svc, c.ID).CompletedDate
	require.NotNil(t, first)

	time.Sleep(5 * time.Millisecond)
	_, err = svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)

	second := getByID(t, svc, c.ID).CompletedDate
	require.NotNil(t, second)
	assert.Equal(t, *first, *second)
}

func TestToggleItemFreshDateOnReentry(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "One step", "Ana", []string{"Do it"})

	_, err := svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	first := *getByID(t, svc, c.ID).CompletedDate

	_, err = svc.ToggleItem(ctx, c.ID, 0, false)
	require.NoError(t, err)
	assert.Nil(t, getByID(t, svc, c.ID).CompletedDate)

	time.Sleep(5 * time.Millisecond)
	_, err = svc.ToggleItem(ctx, c.ID, 0, true)
	require.NoError(t, err)
	second := *getByID(t, svc, c.ID).CompletedDate
	assert.True(t, second.After(first))
}

func TestToggleItemRejectsOutOfRangeIndex(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Short", "Ana", []string{"Only one"})

	_, err := svc.ToggleItem(ctx, c.ID, 1, true)
	assert.ErrorIs(t, err, ErrItemIndex)
	_, err = svc.ToggleItem(ctx, c.ID, -1, true)
	assert.ErrorIs(t, err, ErrItemIndex)

	// The rejected index must not leak into the stored set.
	stored := getByID(t, svc, c.ID)
	assert.Empty(t, stored.ItemsCompleted)
}

func TestToggleItemNotFound(t *testing.T) {
	svc := newChecklistService(t)
	_, err := svc.ToggleItem(context.Background(), 404404, 0, true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetStatusBypassesItemState(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Unstarted", "Ana", []string{"a", "b", "c"})

	// Forcing completed=true works with zero items toggled.
	got, err := svc.SetStatus(ctx, c.ID, true, nil)
	require.NoError(t, err)
	assert.True(t, got.Completed)
	assert.Empty(t, got.ItemsCompleted)
	assert.Nil(t, got.CompletedDate)

	// CompletedDate is only written when a value is supplied.
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	got, err = svc.SetStatus(ctx, c.ID, true, &when)
	require.NoError(t, err)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, when, *got.CompletedDate)

	// Reopening without a date keeps the stored date as-is.
	got, err = svc.SetStatus(ctx, c.ID, false, nil)
	require.NoError(t, err)
	assert.False(t, got.Completed)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, when, *got.CompletedDate)
}

func TestUpdateAppliesPartialPatch(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Original", "Ana", []string{"a"})

	title := "X"
	got, err := svc.Update(ctx, c.ID, ChecklistPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "X", got.Title)
	assert.Equal(t, "Ana", got.Assignee)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, c.Date, got.Date)

	// Replacing items renumbers indices; the completed set only changes
	// when the patch supplies it.
	items := []string{"one", "two"}
	done := []int{1}
	got, err = svc.Update(ctx, c.ID, ChecklistPatch{Items: &items, ItemsCompleted: &done})
	require.NoError(t, err)
	assert.Equal(t, items, got.Items)
	assert.Equal(t, done, got.ItemsCompleted)
}

func TestUpdateThenDeleteSignalsNotFound(t *testing.T) {
	svc := newChecklistService(t)
	ctx := context.Background()
	c := mustCreate(t, svc, "Doomed", "Ana", nil)

	require.NoError(t, svc.Delete(ctx, c.ID))

	title := "too late"
	_, err := svc.Update(ctx, c.ID, ChecklistPatch{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, c.ID), ErrNotFound)
}
