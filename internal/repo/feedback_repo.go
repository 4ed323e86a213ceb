package repo

import (
	"context"
	"sync"
	"time"

	dom "crewboard/internal/domain"
	"crewboard/internal/store"
)

type FeedbackRepo interface {
	List(ctx context.Context) ([]dom.Feedback, error)
	GetByID(ctx context.Context, id int64) (dom.Feedback, error)
	Create(ctx context.Context, f dom.Feedback) (dom.Feedback, error)
	Update(ctx context.Context, id int64, f dom.Feedback) (dom.Feedback, error)
	Delete(ctx context.Context, id int64) error
	Reload(ctx context.Context) error
}

// FileFeedbackRepo mirrors FileChecklistRepo over the feedbacks file.
type FileFeedbackRepo struct {
	file *store.File[[]dom.Feedback]

	mu     sync.RWMutex
	items  []dom.Feedback
	lastID int64
}

func NewFileFeedbackRepo(file *store.File[[]dom.Feedback]) *FileFeedbackRepo {
	r := &FileFeedbackRepo{file: file}
	r.items = file.Load(nil)
	r.lastID = maxFeedbackID(r.items)
	return r
}

func (r *FileFeedbackRepo) List(ctx context.Context) ([]dom.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]dom.Feedback, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *FileFeedbackRepo) GetByID(ctx context.Context, id int64) (dom.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, f := range r.items {
		if f.ID == id {
			return f, nil
		}
	}
	return dom.Feedback{}, ErrNotFound
}

func (r *FileFeedbackRepo) Create(ctx context.Context, f dom.Feedback) (dom.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	id := now.UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	f.ID = id
	f.Date = now

	next := append(cloneFeedbacks(r.items), f)
	if err := r.file.Save(next); err != nil {
		return dom.Feedback{}, err
	}
	r.items = next
	r.lastID = id
	return f, nil
}

func (r *FileFeedbackRepo) Update(ctx context.Context, id int64, f dom.Feedback) (dom.Feedback, error) {
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
		return dom.Feedback{}, ErrNotFound
	}

	f.ID = id
	f.Date = r.items[idx].Date

	next := cloneFeedbacks(r.items)
	next[idx] = f
	if err := r.file.Save(next); err != nil {
		return dom.Feedback{}, err
	}
	r.items = next
	return f, nil
}

func (r *FileFeedbackRepo) Delete(ctx context.Context, id int64) error {
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

	next := cloneFeedbacks(r.items)
	next = append(next[:idx], next[idx+1:]...)
	if err := r.file.Save(next); err != nil {
		return err
	}
	r.items = next
	return nil
}

func (r *FileFeedbackRepo) Reload(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = r.file.Load(nil)
	if max := maxFeedbackID(r.items); max > r.lastID {
		r.lastID = max
	}
	return nil
}

func cloneFeedbacks(in []dom.Feedback) []dom.Feedback {
	out := make([]dom.Feedback, len(in))
	copy(out, in)
	return out
}

func maxFeedbackID(items []dom.Feedback) int64 {
	var max int64
	for _, f := range items {
		if f.ID > max {
			max = f.ID
		}
	}
	return max
}
