package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Text accepts a JSON string or number. Form fields such as NIM or year are
// often posted as numbers.
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*t = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("text: expected string or number, got %s", b)
	}
	*t = Text(n.String())
	return nil
}

// String returns the value exactly as posted.
func (t Text) String() string { return string(t) }

// Blank reports whether the value is empty or whitespace only.
func (t Text) Blank() bool { return strings.TrimSpace(string(t)) == "" }

// Ptr returns nil for blank values so optional columns store NULL.
func (t Text) Ptr() *string {
	if t.Blank() {
		return nil
	}
	s := string(t)
	return &s
}

type LoginRequest struct {
	Username Text `json:"username"`
	Password Text `json:"password"`
}

type LoginResponse struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message"`
	User     LoginUser `json:"user"`
	Redirect string    `json:"redirect"`
}

type LoginUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type GalleryInput struct {
	Title     Text `json:"title"`
	Category  Text `json:"category"`
	PhotoDate Text `json:"photo_date"`
	ImageURL  Text `json:"image_url"`
}

type ActivityInput struct {
	Title        Text `json:"title"`
	ActivityDate Text `json:"activity_date"`
	Description  Text `json:"description"`
	Category     Text `json:"category"`
	Status       Text `json:"status"`
}

type MemberInput struct {
	Nama     Text `json:"nama"`
	NIM      Text `json:"nim"`
	Email    Text `json:"email"`
	Telepon  Text `json:"telepon"`
	Jabatan  Text `json:"jabatan"`
	Angkatan Text `json:"angkatan"`
}

type SejarahInput struct {
	Deskripsi    Text `json:"deskripsi"`
	TahunBerdiri Text `json:"tahun_berdiri"`
}

type BudayaInput struct {
	Slogan   Text `json:"slogan"`
	Struktur Text `json:"struktur"`
}

type VisiMisiInput struct {
	Visi Text `json:"visi"`
	Misi Text `json:"misi"`
}
