package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hmps-api/internal/logger"
	"hmps-api/internal/model"
	"hmps-api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	loginRedirect        = "/admin/dashboard.html"
	msgInvalidCredential = "Username atau Password salah."
)

type AuthHandler struct{ auth *service.AuthService }

func NewAuthHandler(auth *service.AuthService) *AuthHandler { return &AuthHandler{auth: auth} }

func loginError(msg string) gin.H { return gin.H{"success": false, "message": msg} }

// POST /login checks a username-or-email and password. It issues no token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username.Blank() || req.Password == "" {
		c.JSON(http.StatusBadRequest, loginError("Username/Email dan Password wajib diisi."))
		return
	}

	u, err := h.auth.Login(c.Request.Context(), req.Username.String(), string(req.Password))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			logger.Warn("login.failed", "by_email", strings.Contains(req.Username.String(), "@"), "ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, loginError(msgInvalidCredential))
			return
		}
		internalError(c, loginError, "Kesalahan server saat login.", err)
		return
	}

	logger.Info("login.ok", "uid", u.UserID, "username", u.Username)
	c.JSON(http.StatusOK, model.LoginResponse{
		Success:  true,
		Message:  fmt.Sprintf("Login berhasil! Selamat datang, %s.", u.Username),
		User:     model.LoginUser{ID: u.UserID, Username: u.Username},
		Redirect: loginRedirect,
	})
}
