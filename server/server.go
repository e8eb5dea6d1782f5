// Package server exposes the scoring pipeline over HTTP.
package server

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/faydalink/socialscore"
	"github.com/faydalink/socialscore/profile"
)

// Server wires the scoring service into a gin router.
type Server struct {
	svc    *socialscore.Service
	logger *slog.Logger
}

// New creates a Server. A nil logger falls back to slog.Default.
func New(svc *socialscore.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the HTTP routes.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Authorization"},
	}))

	r.GET("/health", s.health)
	r.POST("/facebook-score", s.facebookScore)

	return r
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// facebookScore handles the central scoring request. Requests carrying no
// facebook entries are rejected with 400; requests whose entries all failed
// to resolve map to 404. Both are terminal for the request.
func (s *Server) facebookScore(c *gin.Context) {
	var req socialscore.CentralScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid request body"})
		return
	}

	resp, err := s.svc.Score(c.Request.Context(), req)
	switch {
	case errors.Is(err, socialscore.ErrNoFacebookRequests):
		c.JSON(http.StatusBadRequest, gin.H{"detail": "No Facebook score requests found"})
	case errors.Is(err, profile.ErrNoProfiles):
		c.JSON(http.StatusNotFound, gin.H{"detail": "No valid Facebook profiles processed"})
	case err != nil:
		s.logger.Error("score request failed", "fayda_number", req.FaydaNumber, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	default:
		c.JSON(http.StatusOK, resp)
	}
}

// requestID tags each request with an ID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
