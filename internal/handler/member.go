package handler

import (
	"errors"
	"fmt"
	"net/http"

	"hmps-api/internal/model"
	"hmps-api/internal/service"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct{ svc *service.MemberService }

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// GET /api/anggota?search=
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		internalError(c, statusError, "Gagal mengambil data anggota", err)
		return
	}
	if members == nil {
		members = []model.Member{}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "total": len(members), "data": members})
}

// GET /api/anggota/:id
func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := parseID(c, statusError)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": gin.H{}})
	case err != nil:
		internalError(c, statusError, "Gagal mengambil data anggota", err)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "success", "data": m})
	}
}

// POST /api/anggota
func (h *MemberHandler) Create(c *gin.Context) {
	var in model.MemberInput
	if !bindJSON(c, &in, statusError) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), in)
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, statusError("Nama, NIM, Email, Jabatan, dan Angkatan harus diisi."))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, statusError("NIM atau Email sudah terdaftar. Mohon cek kembali."))
	case err != nil:
		internalError(c, statusError, "Kesalahan server saat menambahkan data.", err)
	default:
		c.JSON(http.StatusCreated, gin.H{"status": "success", "message": "Anggota baru berhasil ditambahkan.", "id": id})
	}
}

// PUT /api/anggota/:id
func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := parseID(c, statusError)
	if !ok {
		return
	}
	var in model.MemberInput
	if !bindJSON(c, &in, statusError) {
		return
	}
	err := h.svc.Update(c.Request.Context(), id, in)
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, statusError("Semua field wajib diisi untuk pembaruan."))
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, statusError("NIM atau Email sudah terdaftar pada anggota lain."))
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, statusError(fmt.Sprintf("Anggota dengan ID %d tidak ditemukan.", id)))
	case err != nil:
		internalError(c, statusError, "Kesalahan server saat memperbarui data.", err)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("Data anggota ID %d berhasil diperbarui.", id)})
	}
}

// DELETE /api/anggota/:id
func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, statusError)
	if !ok {
		return
	}
	err := h.svc.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, statusError(fmt.Sprintf("Anggota dengan ID %d tidak ditemukan.", id)))
	case err != nil:
		internalError(c, statusError, "Kesalahan server saat menghapus data.", err)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": fmt.Sprintf("Anggota ID %d berhasil dihapus.", id)})
	}
}
