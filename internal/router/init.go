package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/notes-api/internal/container"
	handlers "github.com/oksasatya/notes-api/internal/interface/http"
	"github.com/oksasatya/notes-api/internal/interface/middleware"
	"github.com/oksasatya/notes-api/internal/router/modules"
	"github.com/oksasatya/notes-api/pkg/validation"
)

// InitModules builds handlers from the container and registers every module
func InitModules(r *Registry, c *container.Container) {
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(c.Auth, c.Logger), c.Redis))
	r.Add(modules.NewNoteModule(handlers.NewNoteHandler(c.Notes, c.Logger), c.JWT, c.Redis))
	if c.Config == nil || c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Redis))
	}
}

// New returns an engine with the global middleware, /healthz and all API
// modules. CORS is added by main.
func New(c *container.Container, global ...gin.HandlerFunc) *gin.Engine {
	validation.Init()

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestIDMiddleware(), middleware.RealIP())
	switch {
	case c.Config == nil:
	case c.Config.HTTPLogEnabled && c.Logger != nil:
		engine.Use(middleware.AccessLog(c.Logger))
	case c.Config.Env == "development":
		engine.Use(gin.Logger())
	}
	engine.Use(global...)

	engine.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	reg := NewRegistry(engine)
	InitModules(reg, c)
	reg.RegisterAll()
	return engine
}
