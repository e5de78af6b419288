package service

import (
	"context"
	"fmt"
	"strings"

	"hmps-api/internal/model"
	"hmps-api/internal/store"
)

const memberColumns = "id, nama, nim, email, telepon, jabatan, angkatan"

// memberSearch matches the term against name, nim, email and jabatan,
// case-insensitively.
const memberSearch = " WHERE LOWER(nama) LIKE ? ESCAPE '!' OR LOWER(nim) LIKE ? ESCAPE '!'" +
	" OR LOWER(email) LIKE ? ESCAPE '!' OR LOWER(jabatan) LIKE ? ESCAPE '!'"

type MemberService struct{ st *store.Store }

func NewMemberService(st *store.Store) *MemberService { return &MemberService{st: st} }

func (s *MemberService) List(ctx context.Context, search string) ([]model.Member, error) {
	query := "SELECT " + memberColumns + " FROM anggota"
	var args []any
	if term := strings.TrimSpace(search); term != "" {
		like := "%" + escapeLike(strings.ToLower(term)) + "%"
		query += memberSearch
		args = []any{like, like, like, like}
	}

	var members []model.Member
	if err := s.st.Select(ctx, &members, query, args...); err != nil {
		return nil, wrap("list members", err)
	}
	return members, nil
}

func (s *MemberService) Get(ctx context.Context, id int) (*model.Member, error) {
	var members []model.Member
	if err := s.st.Select(ctx, &members, "SELECT "+memberColumns+" FROM anggota WHERE id = ?", id); err != nil {
		return nil, wrap("get member", err)
	}
	if len(members) == 0 {
		return nil, fmt.Errorf("member %d: %w", id, ErrNotFound)
	}
	return &members[0], nil
}

func (s *MemberService) Create(ctx context.Context, in model.MemberInput) (int, error) {
	m, err := memberFromInput(in)
	if err != nil {
		return 0, err
	}
	if err := s.st.Insert(ctx, &m); err != nil {
		return 0, wrap("insert member", err)
	}
	return m.ID, nil
}

func (s *MemberService) Update(ctx context.Context, id int, in model.MemberInput) error {
	m, err := memberFromInput(in)
	if err != nil {
		return err
	}
	n, err := s.st.Exec(ctx,
		"UPDATE anggota SET nama = ?, nim = ?, email = ?, telepon = ?, jabatan = ?, angkatan = ? WHERE id = ?",
		m.Nama, m.NIM, m.Email, m.Telepon, m.Jabatan, m.Angkatan, id)
	return matched(fmt.Sprintf("update member %d", id), n, err)
}

func (s *MemberService) Delete(ctx context.Context, id int) error {
	n, err := s.st.Exec(ctx, "DELETE FROM anggota WHERE id = ?", id)
	return matched(fmt.Sprintf("delete member %d", id), n, err)
}

func memberFromInput(in model.MemberInput) (model.Member, error) {
	if err := checkRequired(
		requiredField{"nama", in.Nama},
		requiredField{"nim", in.NIM},
		requiredField{"email", in.Email},
		requiredField{"jabatan", in.Jabatan},
		requiredField{"angkatan", in.Angkatan},
	); err != nil {
		return model.Member{}, err
	}
	return model.Member{
		Nama:     in.Nama.String(),
		NIM:      in.NIM.String(),
		Email:    in.Email.String(),
		Telepon:  in.Telepon.Ptr(),
		Jabatan:  in.Jabatan.String(),
		Angkatan: in.Angkatan.String(),
	}, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// escapeLike makes % and _ in user input match literally.
func escapeLike(s string) string { return likeEscaper.Replace(s) }
