package service

import (
	"context"
	"strings"

	dom "crewboard/internal/domain"
	"crewboard/internal/repo"

	"golang.org/x/sync/singleflight"
)

// FeedbackPatch enumerates the fields a partial update may change.
type FeedbackPatch struct {
	Title    *string
	Message  *string
	Assignee *string
}

type FeedbackService struct {
	repo repo.FeedbackRepo
	sf   singleflight.Group
}

func NewFeedbackService(r repo.FeedbackRepo) *FeedbackService {
	return &FeedbackService{repo: r}
}

func (s *FeedbackService) Create(ctx context.Context, title, message, assignee string) (dom.Feedback, error) {
	return s.repo.Create(ctx, dom.Feedback{
		Title:    strings.TrimSpace(title),
		Message:  strings.TrimSpace(message),
		Assignee: strings.TrimSpace(assignee),
	})
}

func (s *FeedbackService) List(ctx context.Context) ([]dom.Feedback, error) {
	v, err, _ := s.sf.Do("list", func() (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Feedback), nil
}

func (s *FeedbackService) Update(ctx context.Context, id int64, patch FeedbackPatch) (dom.Feedback, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dom.Feedback{}, mapRepoErr(err)
	}

	next := existing
	if patch.Title != nil {
		next.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Message != nil {
		next.Message = strings.TrimSpace(*patch.Message)
	}
	if patch.Assignee != nil {
		next.Assignee = strings.TrimSpace(*patch.Assignee)
	}

	out, err := s.repo.Update(ctx, id, next)
	if err != nil {
		return dom.Feedback{}, mapRepoErr(err)
	}
	return out, nil
}

func (s *FeedbackService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapRepoErr(err)
	}
	return nil
}
