package service

import (
	"context"

	"hmps-api/internal/model"
	"hmps-api/internal/store"
)

// AboutService owns the three single-row "about" sections. Each row lives at
// model.AboutID and is written with an upsert; there is no delete.
type AboutService struct{ st *store.Store }

func NewAboutService(st *store.Store) *AboutService { return &AboutService{st: st} }

// Sejarah returns the history section as a list of zero or one rows.
func (s *AboutService) Sejarah(ctx context.Context) ([]model.Sejarah, error) {
	var rows []model.Sejarah
	if err := s.st.Select(ctx, &rows, "SELECT id, deskripsi, tahun_berdiri FROM about_sejarah"); err != nil {
		return nil, wrap("get sejarah", err)
	}
	return rows, nil
}

func (s *AboutService) SetSejarah(ctx context.Context, in model.SejarahInput) error {
	if err := checkRequired(
		requiredField{"deskripsi", in.Deskripsi},
		requiredField{"tahun_berdiri", in.TahunBerdiri},
	); err != nil {
		return err
	}
	row := model.Sejarah{ID: model.AboutID, Deskripsi: in.Deskripsi.String(), TahunBerdiri: in.TahunBerdiri.String()}
	if err := s.st.Upsert(ctx, &row, "id"); err != nil {
		return wrap("upsert sejarah", err)
	}
	return nil
}

func (s *AboutService) Budaya(ctx context.Context) ([]model.Budaya, error) {
	var rows []model.Budaya
	if err := s.st.Select(ctx, &rows, "SELECT id, slogan, struktur FROM about_budaya"); err != nil {
		return nil, wrap("get budaya", err)
	}
	return rows, nil
}

// SetBudaya requires only the slogan; a blank struktur is stored as NULL.
func (s *AboutService) SetBudaya(ctx context.Context, in model.BudayaInput) error {
	if err := checkRequired(requiredField{"slogan", in.Slogan}); err != nil {
		return err
	}
	row := model.Budaya{ID: model.AboutID, Slogan: in.Slogan.String(), Struktur: in.Struktur.Ptr()}
	if err := s.st.Upsert(ctx, &row, "id"); err != nil {
		return wrap("upsert budaya", err)
	}
	return nil
}

func (s *AboutService) VisiMisi(ctx context.Context) ([]model.VisiMisi, error) {
	var rows []model.VisiMisi
	if err := s.st.Select(ctx, &rows, "SELECT id, visi, misi FROM about_visi_misi"); err != nil {
		return nil, wrap("get visi misi", err)
	}
	return rows, nil
}

func (s *AboutService) SetVisiMisi(ctx context.Context, in model.VisiMisiInput) error {
	if err := checkRequired(
		requiredField{"visi", in.Visi},
		requiredField{"misi", in.Misi},
	); err != nil {
		return err
	}
	row := model.VisiMisi{ID: model.AboutID, Visi: in.Visi.String(), Misi: in.Misi.String()}
	if err := s.st.Upsert(ctx, &row, "id"); err != nil {
		return wrap("upsert visi misi", err)
	}
	return nil
}
