package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kotche/noteshare/internal/service/auth"
	"github.com/kotche/noteshare/internal/service/grants"
	"github.com/kotche/noteshare/internal/service/notes"
	"github.com/kotche/noteshare/internal/service/token"
)

type Server struct {
	auth   auth.Service
	notes  notes.Service
	grants grants.Service
	tokens token.Service
}

func New(auth auth.Service, notes notes.Service, grants grants.Service, tokens token.Service) *Server {
	return &Server{
		auth:   auth,
		notes:  notes,
		grants: grants,
		tokens: tokens,
	}
}

func (s *Server) Router() *gin.Engine {
	router := gin.Default()
	router.Use(observeMiddleware())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API!"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Healthy"})
	})

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", s.signUpHandler)
		authGroup.POST("/login", s.loginHandler)
		authGroup.DELETE("/delete", s.deleteAccountHandler)
	}

	notesGroup := router.Group("/notes", s.authRequired())
	{
		notesGroup.POST("/create", s.createNoteHandler)
		notesGroup.GET("/read", s.readNoteHandler)
		notesGroup.GET("/read-all", s.readAllNotesHandler)
		notesGroup.PUT("/update", s.updateNoteHandler)
		notesGroup.DELETE("/delete", s.deleteNoteHandler)

		notesGroup.POST("/give-read-access", s.giveReadAccessHandler)
		notesGroup.DELETE("/revoke-read-access", s.revokeReadAccessHandler)
		notesGroup.POST("/read-note-with-access", s.readNoteWithAccessHandler)
	}

	return router
}

func (s *Server) Run(addr string) error {
	return s.Router().Run(addr)
}
