package model

type GalleryItem struct {
	ID        int    `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:255;not null" json:"title"`
	Category  string `gorm:"size:100;not null" json:"category"`
	PhotoDate Date   `gorm:"type:date;not null" json:"photo_date"`
	ImageURL  string `gorm:"column:image_url;size:1024;not null" json:"image_url"`
}

type Activity struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	Title        string  `gorm:"size:255;not null" json:"title"`
	ActivityDate Date    `gorm:"type:date;not null" json:"activity_date"`
	Description  *string `gorm:"type:text" json:"description"`
	Category     *string `gorm:"size:100" json:"category"`
	Status       *string `gorm:"size:50" json:"status"`
}

type Member struct {
	ID       int     `gorm:"primaryKey" json:"id"`
	Nama     string  `gorm:"size:255;not null" json:"nama"`
	NIM      string  `gorm:"column:nim;size:50;not null;uniqueIndex" json:"nim"`
	Email    string  `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Telepon  *string `gorm:"size:50" json:"telepon"`
	Jabatan  string  `gorm:"size:100;not null" json:"jabatan"`
	Angkatan string  `gorm:"size:20;not null" json:"angkatan"`
}

// AboutID is the fixed key of every about section row.
const AboutID = 1

type Sejarah struct {
	ID           int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Deskripsi    string `gorm:"type:text;not null" json:"deskripsi"`
	TahunBerdiri string `gorm:"size:20;not null" json:"tahun_berdiri"`
}

type Budaya struct {
	ID       int     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Slogan   string  `gorm:"type:text;not null" json:"slogan"`
	Struktur *string `gorm:"type:text" json:"struktur"`
}

type VisiMisi struct {
	ID   int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Visi string `gorm:"type:text;not null" json:"visi"`
	Misi string `gorm:"type:text;not null" json:"misi"`
}

type User struct {
	UserID       int    `gorm:"column:user_id;primaryKey" json:"id"`
	Username     string `gorm:"size:100;not null;uniqueIndex" json:"username"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"column:password_hash;size:255;not null" json:"-"`
}

func (GalleryItem) TableName() string { return "gallery" }
func (Activity) TableName() string    { return "activities" }
func (Member) TableName() string      { return "anggota" }
func (Sejarah) TableName() string     { return "about_sejarah" }
func (Budaya) TableName() string      { return "about_budaya" }
func (VisiMisi) TableName() string    { return "about_visi_misi" }
func (User) TableName() string        { return "users" }

// All lists every persisted entity, in migration order.
func All() []any {
	return []any{&GalleryItem{}, &Activity{}, &Member{}, &Sejarah{}, &Budaya{}, &VisiMisi{}, &User{}}
}
