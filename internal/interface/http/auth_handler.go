package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/internal/application"
	"github.com/oksasatya/go-directory-portal/internal/interface/middleware"
	"github.com/oksasatya/go-directory-portal/pkg/response"
	"github.com/oksasatya/go-directory-portal/pkg/validation"
)

// AuthHandler serves the JSON auth endpoints.
type AuthHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger}
}

// Register POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req application.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	acct, err := h.Auth.Register(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, application.NewSession(acct).Public(), "registration successful", nil)
}

// Login POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req application.LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	acct, err := h.Auth.Login(c.Request.Context(), middleware.ClientID(c), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, application.NewSession(acct).Public(), "login successful", nil)
}

// Logout POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Auth.Logout(c.Request.Context(), middleware.ClientID(c))
	response.Success[any](c, http.StatusOK, gin.H{"logged_out": true}, "logged out", nil)
}

// Session GET /api/session
func (h *AuthHandler) Session(c *gin.Context) {
	sess, ok := h.Auth.Session(c.Request.Context(), middleware.ClientID(c))
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "not logged in", nil)
		return
	}
	response.Success(c, http.StatusOK, sess.Public(), "ok", nil)
}

// SearchAccounts GET /api/accounts/search?q=&size=
func (h *AuthHandler) SearchAccounts(c *gin.Context) {
	q := c.Query("q")
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	res := h.Auth.SearchAccounts(c.Request.Context(), q, size)
	response.Success(c, http.StatusOK, res, "ok", map[string]any{"count": len(res), "q": q})
}

func (h *AuthHandler) fail(c *gin.Context, err error) {
	status, fields, msg := authFailure(err)
	if status == http.StatusInternalServerError && h.Logger != nil {
		h.Logger.WithError(err).WithField("path", c.FullPath()).Error("auth request failed")
	}
	response.Error[any](c, status, msg, fields)
}

// authFailure maps service errors to status, field messages and summary.
func authFailure(err error) (int, map[string]string, string) {
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		return http.StatusInternalServerError, nil, "internal error"
	}
	status := http.StatusBadRequest
	if errors.Is(err, application.ErrEmailNotRegistered) || errors.Is(err, application.ErrIncorrectPassword) {
		status = http.StatusUnauthorized
	}
	return status, verr.Fields, verr.Message()
}
