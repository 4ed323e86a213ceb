package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	dom "crewboard/internal/domain"
	"crewboard/internal/repo"

	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrItemIndex = errors.New("itemIndex out of range")
)

// ChecklistPatch enumerates the fields a partial update may change.
// Nil means "leave as stored". ID and Date are not part of the patch;
// caller-supplied values for them are never trusted.
type ChecklistPatch struct {
	Title          *string
	Description    *string
	Assignee       *string
	Items          *[]string
	ItemsCompleted *[]int
	Completed      *bool
	CompletedDate  *time.Time
}

// ItemToggle is the result of toggling a single checklist item.
type ItemToggle struct {
	Progress  int
	Completed bool
}

type ChecklistService struct {
	repo repo.ChecklistRepo
	sf   singleflight.Group
}

func NewChecklistService(r repo.ChecklistRepo) *ChecklistService {
	return &ChecklistService{repo: r}
}

// Create builds a new checklist; the repository assigns ID and Date.
func (s *ChecklistService) Create(ctx context.Context, title, description, assignee string, items []string) (dom.Checklist, error) {
	return s.repo.Create(ctx, dom.Checklist{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Assignee:    strings.TrimSpace(assignee),
		Items:       items,
	})
}

// List returns the stored collection in insertion order. Concurrent
// calls are coalesced.
func (s *ChecklistService) List(ctx context.Context) ([]dom.Checklist, error) {
	v, err, _ := s.sf.Do("list", func() (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Checklist), nil
}

// Update applies a partial edit. Replacing Items renumbers indices;
// ItemsCompleted is only changed when the patch supplies it, matching
// the generic-edit path of the original tool.
func (s *ChecklistService) Update(ctx context.Context, id int64, patch ChecklistPatch) (dom.Checklist, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Checklist{}, mapRepoErr(err)
	}

	next := existing
	if patch.Title != nil {
		next.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		next.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.Assignee != nil {
		next.Assignee = strings.TrimSpace(*patch.Assignee)
	}
	if patch.Items != nil {
		next.Items = *patch.Items
	}
	if patch.ItemsCompleted != nil {
		next.ItemsCompleted = *patch.ItemsCompleted
	}
	if patch.Completed != nil {
		next.Completed = *patch.Completed
	}
	if patch.CompletedDate != nil {
		next.CompletedDate = patch.CompletedDate
	}

	out, err := s.repo.Update(ctx, id, next)
	if err != nil {
		return dom.Checklist{}, mapRepoErr(err)
	}
	return out, nil
}

func (s *ChecklistService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

// ToggleItem flips one item's completion flag and re-derives the
// aggregate state:
//
//   - toggling on inserts the index into the completed set, toggling off
//     removes it; both are idempotent
//   - Completed becomes true iff every item is toggled on
//   - CompletedDate is stamped when Completed first turns true, kept
//     as-is while it stays true, and cleared whenever it turns false
//
// An index outside the item list is rejected with ErrItemIndex rather
// than stored as an index that could never complete.
func (s *ChecklistService) ToggleItem(ctx context.Context, id int64, itemIndex int, completed bool) (ItemToggle, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return ItemToggle{}, mapRepoErr(err)
	}
	if itemIndex < 0 || itemIndex >= len(c.Items) {
		return ItemToggle{}, ErrItemIndex
	}

	if completed {
		if !c.HasItemCompleted(itemIndex) {
			c.ItemsCompleted = append(append([]int{}, c.ItemsCompleted...), itemIndex)
		}
	} else {
		kept := make([]int, 0, len(c.ItemsCompleted))
		for _, v := range c.ItemsCompleted {
			if v != itemIndex {
				kept = append(kept, v)
			}
		}
		c.ItemsCompleted = kept
	}

	totalItems := len(c.Items)
	completedCount := len(c.ItemsCompleted)
	allDone := totalItems > 0 && completedCount == totalItems

	c.Completed = allDone
	if allDone {
		if c.CompletedDate == nil {
			now := time.Now().UTC()
			c.CompletedDate = &now
		}
	} else {
		c.CompletedDate = nil
	}

	if _, err := s.repo.Update(ctx, id, c); err != nil {
		return ItemToggle{}, mapRepoErr(err)
	}

	progress := 0
	if totalItems > 0 {
		progress = int(math.Round(float64(completedCount) / float64(totalItems) * 100))
	}
	return ItemToggle{Progress: progress, Completed: allDone}, nil
}

// SetStatus overwrites the aggregate completed flag without consulting
// per-item state. CompletedDate is only touched when a value is given.
// This is the manager's one-shot "mark complete" action and must stay
// independent of the per-item derivation.
func (s *ChecklistService) SetStatus(ctx context.Context, id int64, completed bool, completedDate *time.Time) (dom.Checklist, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Checklist{}, mapRepoErr(err)
	}

	c.Completed = completed
	if completedDate != nil {
		c.CompletedDate = completedDate
	}

	out, err := s.repo.Update(ctx, id, c)
	if err != nil {
		return dom.Checklist{}, mapRepoErr(err)
	}
	return out, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
