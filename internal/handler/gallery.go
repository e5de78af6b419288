package handler

import (
	"errors"
	"fmt"
	"net/http"

	"hmps-api/internal/model"
	"hmps-api/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct{ svc *service.GalleryService }

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// GET /gallery
func (h *GalleryHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, errorKey, "Gagal mengambil data galeri", err)
		return
	}
	if items == nil {
		items = []model.GalleryItem{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /gallery/:id answers {} rather than 404 for an unknown id.
func (h *GalleryHandler) Get(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{})
	case err != nil:
		internalError(c, errorKey, "Gagal mengambil data galeri", err)
	default:
		c.JSON(http.StatusOK, item)
	}
}

// POST /gallery
func (h *GalleryHandler) Create(c *gin.Context) {
	var in model.GalleryInput
	if !bindJSON(c, &in, errorKey) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "Semua field (judul, kategori, tanggal, URL gambar) wajib diisi.", "Gagal menyimpan foto baru ke database.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Foto berhasil diunggah.", "id": id})
}

// PUT /gallery/:id
func (h *GalleryHandler) Update(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	var in model.GalleryInput
	if !bindJSON(c, &in, errorKey) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorKey(fmt.Sprintf("Foto dengan ID %d tidak ditemukan.", id)))
			return
		}
		h.writeError(c, err, "Semua field wajib diisi untuk pembaruan.", "Gagal memperbarui detail foto di database.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Detail foto berhasil diperbarui.", "id": id})
}

// DELETE /gallery/:id
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorKey(fmt.Sprintf("Foto dengan ID %d tidak ditemukan.", id)))
			return
		}
		internalError(c, errorKey, "Gagal menghapus foto dari database.", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GalleryHandler) writeError(c *gin.Context, err error, missing, failed string) {
	switch {
	case errors.Is(err, model.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, errorKey("Format tanggal foto tidak valid."))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, errorKey(missing))
	default:
		internalError(c, errorKey, failed, err)
	}
}
