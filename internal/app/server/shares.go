package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kotche/noteshare/internal/model"
)

// accessRequest names the other party of a share: the grantee for
// grant/revoke, the note's owner for a shared read.
type accessRequest struct {
	UserID int64 `json:"user_id" binding:"required,min=1"`
	NoteID int64 `json:"note_id" binding:"required,min=1"`
}

func (s *Server) giveReadAccessHandler(c *gin.Context) {
	var req accessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	grant, err := s.grants.Grant(
		c.Request.Context(),
		currentUserID(c),
		model.NoteID(req.NoteID),
		model.UserID(req.UserID),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, grantResponse{
		UserID:      grant.UserID,
		NoteOwnerID: grant.NoteOwnerID,
		NoteID:      grant.NoteID,
		GrantedAt:   grant.GrantedAt,
	})
}

func (s *Server) revokeReadAccessHandler(c *gin.Context) {
	var req accessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	err := s.grants.Revoke(
		c.Request.Context(),
		currentUserID(c),
		model.NoteID(req.NoteID),
		model.UserID(req.UserID),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) readNoteWithAccessHandler(c *gin.Context) {
	var req accessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err)
		return
	}

	note, err := s.grants.ReadShared(
		c.Request.Context(),
		currentUserID(c),
		model.UserID(req.UserID),
		model.NoteID(req.NoteID),
	)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newNoteResponse(note))
}
