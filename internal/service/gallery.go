package service

import (
	"context"
	"fmt"

	"hmps-api/internal/model"
	"hmps-api/internal/store"
)

const galleryColumns = "id, title, category, photo_date, image_url"

type GalleryService struct{ st *store.Store }

func NewGalleryService(st *store.Store) *GalleryService { return &GalleryService{st: st} }

func (s *GalleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := s.st.Select(ctx, &items, "SELECT "+galleryColumns+" FROM gallery"); err != nil {
		return nil, wrap("list gallery", err)
	}
	return items, nil
}

func (s *GalleryService) Get(ctx context.Context, id int) (*model.GalleryItem, error) {
	var items []model.GalleryItem
	if err := s.st.Select(ctx, &items, "SELECT "+galleryColumns+" FROM gallery WHERE id = ?", id); err != nil {
		return nil, wrap("get gallery", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("gallery %d: %w", id, ErrNotFound)
	}
	return &items[0], nil
}

func (s *GalleryService) Create(ctx context.Context, in model.GalleryInput) (int, error) {
	item, err := galleryFromInput(in)
	if err != nil {
		return 0, err
	}
	if err := s.st.Insert(ctx, &item); err != nil {
		return 0, wrap("insert gallery", err)
	}
	return item.ID, nil
}

func (s *GalleryService) Update(ctx context.Context, id int, in model.GalleryInput) error {
	item, err := galleryFromInput(in)
	if err != nil {
		return err
	}
	n, err := s.st.Exec(ctx,
		"UPDATE gallery SET title = ?, category = ?, photo_date = ?, image_url = ? WHERE id = ?",
		item.Title, item.Category, item.PhotoDate, item.ImageURL, id)
	return matched(fmt.Sprintf("update gallery %d", id), n, err)
}

func (s *GalleryService) Delete(ctx context.Context, id int) error {
	n, err := s.st.Exec(ctx, "DELETE FROM gallery WHERE id = ?", id)
	return matched(fmt.Sprintf("delete gallery %d", id), n, err)
}

func galleryFromInput(in model.GalleryInput) (model.GalleryItem, error) {
	if err := checkRequired(
		requiredField{"title", in.Title},
		requiredField{"category", in.Category},
		requiredField{"photo_date", in.PhotoDate},
		requiredField{"image_url", in.ImageURL},
	); err != nil {
		return model.GalleryItem{}, err
	}
	date, err := parseDate("photo_date", in.PhotoDate)
	if err != nil {
		return model.GalleryItem{}, err
	}
	return model.GalleryItem{
		Title:     in.Title.String(),
		Category:  in.Category.String(),
		PhotoDate: date,
		ImageURL:  in.ImageURL.String(),
	}, nil
}
