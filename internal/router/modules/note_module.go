package modules

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	handlers "github.com/oksasatya/notes-api/internal/interface/http"
	"github.com/oksasatya/notes-api/internal/interface/middleware"
	"github.com/oksasatya/notes-api/pkg/helpers"
)

type NoteModule struct {
	Handler *handlers.NoteHandler
	JWT     *helpers.JWTManager
	Redis   redis.Cmdable
}

func NewNoteModule(h *handlers.NoteHandler, jwt *helpers.JWTManager, rdb redis.Cmdable) *NoteModule {
	return &NoteModule{Handler: h, JWT: jwt, Redis: rdb}
}

func (m *NoteModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(m.Redis, 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/notes", m.Handler.Create)
		auth.GET("/notes", m.Handler.List)
		auth.GET("/notes/search", m.Handler.Search)
		auth.GET("/notes/:id", m.Handler.Get)
		// paths kept for the existing web client
		auth.PUT("/updatenote/:id", m.Handler.Update)
		auth.DELETE("/deletenote/:id", m.Handler.Delete)
	}
}
