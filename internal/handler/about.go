package handler

import (
	"errors"
	"net/http"

	"hmps-api/internal/model"
	"hmps-api/internal/service"

	"github.com/gin-gonic/gin"
)

type AboutHandler struct{ svc *service.AboutService }

func NewAboutHandler(svc *service.AboutService) *AboutHandler {
	return &AboutHandler{svc: svc}
}

// GET /sejarah
func (h *AboutHandler) GetSejarah(c *gin.Context) {
	rows, err := h.svc.Sejarah(c.Request.Context())
	if err != nil {
		internalError(c, errorKey, "Gagal mengambil data sejarah", err)
		return
	}
	if rows == nil {
		rows = []model.Sejarah{}
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /sejarah
func (h *AboutHandler) PutSejarah(c *gin.Context) {
	var in model.SejarahInput
	if !bindJSON(c, &in, messageKey) {
		return
	}
	h.respondSet(c, h.svc.SetSejarah(c.Request.Context(), in),
		"Deskripsi dan tahun berdiri wajib diisi.",
		"Gagal memperbarui data sejarah di database.",
		"Data sejarah berhasil diperbarui.")
}

// GET /budaya
func (h *AboutHandler) GetBudaya(c *gin.Context) {
	rows, err := h.svc.Budaya(c.Request.Context())
	if err != nil {
		internalError(c, errorKey, "Gagal mengambil data budaya", err)
		return
	}
	if rows == nil {
		rows = []model.Budaya{}
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /budaya
func (h *AboutHandler) PutBudaya(c *gin.Context) {
	var in model.BudayaInput
	if !bindJSON(c, &in, messageKey) {
		return
	}
	h.respondSet(c, h.svc.SetBudaya(c.Request.Context(), in),
		"Slogan/Budaya wajib diisi.",
		"Gagal memperbarui data budaya di database.",
		"Data budaya berhasil diperbarui.")
}

// GET /visi-misi
func (h *AboutHandler) GetVisiMisi(c *gin.Context) {
	rows, err := h.svc.VisiMisi(c.Request.Context())
	if err != nil {
		internalError(c, errorKey, "Gagal mengambil data visi dan misi", err)
		return
	}
	if rows == nil {
		rows = []model.VisiMisi{}
	}
	c.JSON(http.StatusOK, rows)
}

// PUT /visi-misi
func (h *AboutHandler) PutVisiMisi(c *gin.Context) {
	var in model.VisiMisiInput
	if !bindJSON(c, &in, messageKey) {
		return
	}
	h.respondSet(c, h.svc.SetVisiMisi(c.Request.Context(), in),
		"Visi dan Misi wajib diisi.",
		"Gagal memperbarui data visi dan misi di database.",
		"Data visi dan misi berhasil diperbarui.")
}

func (h *AboutHandler) respondSet(c *gin.Context, err error, missing, failed, ok string) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, messageKey(missing))
	case err != nil:
		internalError(c, errorKey, failed, err)
	default:
		c.JSON(http.StatusOK, messageKey(ok))
	}
}
