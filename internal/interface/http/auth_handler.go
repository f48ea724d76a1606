package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/internal/application"
	"github.com/oksasatya/notes-api/internal/interface/middleware"
	"github.com/oksasatya/notes-api/pkg/response"
	"github.com/oksasatya/notes-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// Signup POST /api/v1/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req application.SignupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	req.IP = middleware.ClientIP(c)
	req.UserAgent = c.Request.UserAgent()

	res, err := h.Svc.RequestSignup(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK(c, http.StatusOK, res, "OTP sent to email", nil)
}

// VerifyOTP POST /api/v1/verify-otp
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req application.VerifyInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.VerifyOTP(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OKWithFields(c, http.StatusOK, sess, "user registered successfully", map[string]any{"expires_at": sess.ExpiresAt}, sessionFields(sess))
}

// SignIn POST /api/v1/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req application.SigninInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	sess, err := h.Svc.SignIn(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OKWithFields(c, http.StatusOK, sess, "signin successful", map[string]any{"expires_at": sess.ExpiresAt}, sessionFields(sess))
}

// sessionFields are read by the web client from the top of the body
func sessionFields(sess *application.Session) map[string]any {
	return map[string]any{"token": sess.Token, "user": sess.User}
}
