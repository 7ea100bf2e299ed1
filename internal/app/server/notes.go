package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kotche/noteshare/internal/model"
)

type createNoteRequest struct {
	Title   string `json:"title" binding:"required,max=50"`
	Content string `json:"content"`
}

type updateNoteRequest struct {
	Title   string `json:"title" binding:"omitempty,max=50"`
	Content string `json:"content"`
}

func (s *Server) createNoteHandler(c *gin.Context) {
	var req createNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	note, err := s.notes.Create(c.Request.Context(), currentUserID(c), req.Title, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newNoteResponse(note))
}

func (s *Server) readNoteHandler(c *gin.Context) {
	noteID, err := noteIDQuery(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	note, err := s.notes.Get(c.Request.Context(), noteID, currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNoteResponse(note))
}

func (s *Server) readAllNotesHandler(c *gin.Context) {
	notesList, err := s.notes.List(c.Request.Context(), currentUserID(c))
	if err != nil {
		abortWithError(c, err)
		return
	}

	response := make([]noteResponse, 0, len(notesList))
	for i := range notesList {
		response = append(response, newNoteResponse(&notesList[i]))
	}

	c.JSON(http.StatusOK, response)
}

func (s *Server) updateNoteHandler(c *gin.Context) {
	noteID, err := noteIDQuery(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	var req updateNoteRequest
	if err = c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	note, err := s.notes.Update(c.Request.Context(), noteID, currentUserID(c), req.Title, req.Content)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNoteResponse(note))
}

func (s *Server) deleteNoteHandler(c *gin.Context) {
	noteID, err := noteIDQuery(c)
	if err != nil {
		abortBadRequest(c, err)
		return
	}

	if err = s.notes.Delete(c.Request.Context(), noteID, currentUserID(c)); err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func noteIDQuery(c *gin.Context) (model.NoteID, error) {
	id, err := strconv.ParseInt(c.Query("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.New("id must be a positive number")
	}
	return model.NoteID(id), nil
}
