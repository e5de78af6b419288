package handler

import (
	"errors"
	"fmt"
	"net/http"

	"hmps-api/internal/model"
	"hmps-api/internal/service"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct{ svc *service.ActivityService }

func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// GET /activities
func (h *ActivityHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, errorKey, "Gagal mengambil data kegiatan", err)
		return
	}
	if items == nil {
		items = []model.Activity{}
	}
	c.JSON(http.StatusOK, items)
}

// GET /activities/:id answers {} rather than 404 for an unknown id.
func (h *ActivityHandler) Get(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusOK, gin.H{})
	case err != nil:
		internalError(c, errorKey, "Gagal mengambil data kegiatan", err)
	default:
		c.JSON(http.StatusOK, item)
	}
}

// POST /activities
func (h *ActivityHandler) Create(c *gin.Context) {
	var in model.ActivityInput
	if !bindJSON(c, &in, errorKey) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "Title dan activity_date wajib diisi", "Gagal menambahkan data kegiatan")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Data kegiatan berhasil ditambahkan", "insertedId": id})
}

// PUT /activities/:id
func (h *ActivityHandler) Update(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	var in model.ActivityInput
	if !bindJSON(c, &in, errorKey) {
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, in); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorKey(fmt.Sprintf("Kegiatan dengan ID %d tidak ditemukan.", id)))
			return
		}
		h.writeError(c, err, "Title, activity_date, dan status wajib diisi untuk pembaruan", "Gagal memperbarui data kegiatan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Data kegiatan berhasil diperbarui", "updatedId": id})
}

// DELETE /activities/:id
func (h *ActivityHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, errorKey)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, errorKey(fmt.Sprintf("Kegiatan dengan ID %d tidak ditemukan.", id)))
			return
		}
		internalError(c, errorKey, "Gagal menghapus data kegiatan", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Kegiatan dengan ID %d berhasil dihapus", id), "deletedId": id})
}

func (h *ActivityHandler) writeError(c *gin.Context, err error, missing, failed string) {
	switch {
	case errors.Is(err, model.ErrInvalidDate):
		c.JSON(http.StatusBadRequest, errorKey("Format activity_date tidak valid"))
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, errorKey(missing))
	default:
		internalError(c, errorKey, failed, err)
	}
}
