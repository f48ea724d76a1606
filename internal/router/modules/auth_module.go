package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/notes-api/internal/interface/http"
	"github.com/oksasatya/notes-api/internal/interface/middleware"
)

// AuthModule serves the public signup and signin routes:
// POST /signup, POST /verify-otp, POST /signin
type AuthModule struct {
	Handler *handlers.AuthHandler
	Redis   redis.Cmdable
}

func NewAuthModule(h *handlers.AuthHandler, rdb redis.Cmdable) *AuthModule {
	return &AuthModule{Handler: h, Redis: rdb}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(m.Redis, 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	verifyLimiter := middleware.RateLimit(m.Redis, 30, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(m.Redis, 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/verify-otp", verifyLimiter, m.Handler.VerifyOTP)
	rg.POST("/signin", signinLimiter, m.Handler.SignIn)
}
