package repo

import (
	"context"
	"errors"
	"sync"
	"time"

	dom "crewboard/internal/domain"
	"crewboard/internal/store"
)

// ErrNotFound is returned when no record matches the requested ID.
var ErrNotFound = errors.New("record not found")

type ChecklistRepo interface {
	List(ctx context.Context) ([]dom.Checklist, error)
	GetByID(ctx context.Context, id int64) (dom.Checklist, error)
	Create(ctx context.Context, c dom.Checklist) (dom.Checklist, error)
	Update(ctx context.Context, id int64, c dom.Checklist) (dom.Checklist, error)
	Delete(ctx context.Context, id int64) error
	Reload(ctx context.Context) error
}

// FileChecklistRepo keeps the collection in memory and flushes the full
// slice to its JSON file on every mutation. Mutations are serialized by
// the write lock, so two concurrent edits cannot clobber each other.
type FileChecklistRepo struct {
	file *store.File[[]dom.Checklist]

	mu     sync.RWMutex
	items  []dom.Checklist
	lastID int64
}

// NewFileChecklistRepo loads the collection from file. A missing or
// unparsable file starts as an empty collection.
func NewFileChecklistRepo(file *store.File[[]dom.Checklist]) *FileChecklistRepo {
	r := &FileChecklistRepo{file: file}
	r.items = file.Load(nil)
	r.lastID = maxChecklistID(r.items)
	return r
}

func (r *FileChecklistRepo) List(ctx context.Context) ([]dom.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dom.Checklist, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *FileChecklistRepo) GetByID(ctx context.Context, id int64) (dom.Checklist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return dom.Checklist{}, ErrNotFound
}

// Create assigns identity and creation time, appends and persists.
// IDs are creation-time milliseconds, bumped past the last issued ID so
// two creations within the same millisecond cannot collide.
func (r *FileChecklistRepo) Create(ctx context.Context, c dom.Checklist) (dom.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}

	c.ID = id
	c.Date = now
	c.Completed = false
	c.CompletedDate = nil
	if c.ItemsCompleted == nil {
		c.ItemsCompleted = []int{}
	}
	if c.Items == nil {
		c.Items = []string{}
	}

	next := append(cloneChecklists(r.items), c)
	if err := r.file.Save(next); err != nil {
		return dom.Checklist{}, err
	}
	r.items = next
	r.lastID = id
	return c, nil
}

// Update replaces the record with the given value, re-pinning ID and
// Date to their stored values.
func (r *FileChecklistRepo) Update(ctx context.Context, id int64, c dom.Checklist) (dom.Checklist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return dom.Checklist{}, ErrNotFound
	}

	c.ID = id
	c.Date = r.items[idx].Date

	next := cloneChecklists(r.items)
	next[idx] = c
	if err := r.file.Save(next); err != nil {
		return dom.Checklist{}, err
	}
	r.items = next
	return c, nil
}

// Delete removes the first record matching id.
func (r *FileChecklistRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.items {
		if r.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrNotFound
	}

	next := cloneChecklists(r.items)
	next = append(next[:idx], next[idx+1:]...)
	if err := r.file.Save(next); err != nil {
		return err
	}
	r.items = next
	return nil
}

// Reload re-reads the collection from disk, picking up external edits.
// The last issued ID only moves forward so reloads cannot reintroduce
// ID collisions.
func (r *FileChecklistRepo) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = r.file.Load(nil)
	if max := maxChecklistID(r.items); max > r.lastID {
		r.lastID = max
	}
	return nil
}

func cloneChecklists(in []dom.Checklist) []dom.Checklist {
	out := make([]dom.Checklist, len(in))
	copy(out, in)
	return out
}

func maxChecklistID(items []dom.Checklist) int64 {
	var max int64
	for _, c := range items {
		if c.ID > max {
			max = c.ID
		}
	}
	return max
}
