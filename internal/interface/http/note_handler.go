package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/internal/application"
	"github.com/oksasatya/notes-api/internal/domain/entity"
	"github.com/oksasatya/notes-api/internal/interface/middleware"
	"github.com/oksasatya/notes-api/pkg/response"
	"github.com/oksasatya/notes-api/pkg/validation"
)

type NoteHandler struct {
	Svc    *application.NoteService
	Logger *logrus.Logger
}

func NewNoteHandler(svc *application.NoteService, logger *logrus.Logger) *NoteHandler {
	return &NoteHandler{Svc: svc, Logger: logger}
}

// noteID returns the path id, or false when it cannot name any note
func noteID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return id, true
}

func (h *NoteHandler) Create(c *gin.Context) {
	var req application.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	n, err := h.Svc.Create(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), req)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeNote(c, h.Logger, http.StatusCreated, n, "note created")
}

func (h *NoteHandler) List(c *gin.Context) {
	notes, err := h.Svc.List(c.Request.Context(), c.GetString(middleware.CtxUserIDKey))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if notes == nil {
		notes = []entity.Note{}
	}
	response.OKWithFields(c, http.StatusOK, notes, "notes", map[string]any{"count": len(notes)}, map[string]any{"notes": notes})
}

// Search GET /api/v1/notes/search?q=&size=
func (h *NoteHandler) Search(c *gin.Context) {
	size, _ := strconv.Atoi(c.Query("size"))
	notes, err := h.Svc.Search(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), c.Query("q"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if notes == nil {
		notes = []entity.Note{}
	}
	response.OKWithFields(c, http.StatusOK, notes, "notes", map[string]any{"count": len(notes)}, map[string]any{"notes": notes})
}

func (h *NoteHandler) Get(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrNoteNotFound)
		return
	}
	n, err := h.Svc.Get(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeNote(c, h.Logger, http.StatusOK, n, "note")
}

// Update answers a missing note with 400, which is what the web client expects.
func (h *NoteHandler) Update(c *gin.Context) {
	var req application.NoteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id, ok := noteID(c)
	if !ok {
		response.Fail(c, http.StatusBadRequest, application.ErrNoteNotFound.Error(), nil)
		return
	}
	n, err := h.Svc.Update(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id, req)
	if errors.Is(err, application.ErrNoteNotFound) {
		response.Fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OKWithFields(c, http.StatusOK, n, "note updated", nil, map[string]any{"note": n})
}

func (h *NoteHandler) Delete(c *gin.Context) {
	id, ok := noteID(c)
	if !ok {
		writeError(c, h.Logger, application.ErrNoteNotFound)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), c.GetString(middleware.CtxUserIDKey), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.OK[any](c, http.StatusOK, map[string]any{"deleted": true}, "note deleted successfully", nil)
}

// writeNote puts the note's own fields at the top of the body next to the envelope
func writeNote(c *gin.Context, logger *logrus.Logger, status int, n *entity.Note, message string) {
	fields, err := response.Fields(n)
	if err != nil {
		writeError(c, logger, err)
		return
	}
	response.OKWithFields(c, status, n, message, nil, fields)
}
