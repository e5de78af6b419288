package service

import (
	"context"
	"fmt"

	"hmps-api/internal/model"
	"hmps-api/internal/store"
)

const activityColumns = "id, title, activity_date, description, category, status"

type ActivityService struct{ st *store.Store }

func NewActivityService(st *store.Store) *ActivityService { return &ActivityService{st: st} }

func (s *ActivityService) List(ctx context.Context) ([]model.Activity, error) {
	var items []model.Activity
	if err := s.st.Select(ctx, &items, "SELECT "+activityColumns+" FROM activities"); err != nil {
		return nil, wrap("list activities", err)
	}
	return items, nil
}

func (s *ActivityService) Get(ctx context.Context, id int) (*model.Activity, error) {
	var items []model.Activity
	if err := s.st.Select(ctx, &items, "SELECT "+activityColumns+" FROM activities WHERE id = ?", id); err != nil {
		return nil, wrap("get activity", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("activity %d: %w", id, ErrNotFound)
	}
	return &items[0], nil
}

// Create needs a title and a date; status may be filled in later.
func (s *ActivityService) Create(ctx context.Context, in model.ActivityInput) (int, error) {
	if err := checkRequired(
		requiredField{"title", in.Title},
		requiredField{"activity_date", in.ActivityDate},
	); err != nil {
		return 0, err
	}
	item, err := activityFromInput(in)
	if err != nil {
		return 0, err
	}
	if err := s.st.Insert(ctx, &item); err != nil {
		return 0, wrap("insert activity", err)
	}
	return item.ID, nil
}

// Update replaces every column and additionally requires status.
func (s *ActivityService) Update(ctx context.Context, id int, in model.ActivityInput) error {
	if err := checkRequired(
		requiredField{"title", in.Title},
		requiredField{"activity_date", in.ActivityDate},
		requiredField{"status", in.Status},
	); err != nil {
		return err
	}
	item, err := activityFromInput(in)
	if err != nil {
		return err
	}
	n, err := s.st.Exec(ctx,
		"UPDATE activities SET title = ?, activity_date = ?, description = ?, category = ?, status = ? WHERE id = ?",
		item.Title, item.ActivityDate, item.Description, item.Category, item.Status, id)
	return matched(fmt.Sprintf("update activity %d", id), n, err)
}

func (s *ActivityService) Delete(ctx context.Context, id int) error {
	n, err := s.st.Exec(ctx, "DELETE FROM activities WHERE id = ?", id)
	return matched(fmt.Sprintf("delete activity %d", id), n, err)
}

func activityFromInput(in model.ActivityInput) (model.Activity, error) {
	date, err := parseDate("activity_date", in.ActivityDate)
	if err != nil {
		return model.Activity{}, err
	}
	return model.Activity{
		Title:        in.Title.String(),
		ActivityDate: date,
		Description:  in.Description.Ptr(),
		Category:     in.Category.Ptr(),
		Status:       in.Status.Ptr(),
	}, nil
}
