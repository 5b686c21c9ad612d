// Package api exposes the read surface as JSON: the full collection,
// per-slug lookup, and the summary tallies. It serves the same port as
// the HTML UI and adds nothing to it; there is no write path.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sachben91/agent-protocol-risk/domain/core"
	"github.com/sachben91/agent-protocol-risk/domain/scoring"
	"github.com/sachben91/agent-protocol-risk/ports"
)

// Server represents the JSON API server
type Server struct {
	router *gin.Engine
	reader ports.ProtocolReaderPort
	logger zerolog.Logger
	port   string
}

// Config holds API server configuration
type Config struct {
	Port    string
	GinMode string
	Reader  ports.ProtocolReaderPort
}

// NewServer creates a new API server instance
func NewServer(cfg Config) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	s := &Server{
		router: gin.New(),
		reader: cfg.Reader,
		logger: log.With().Str("component", "api").Logger(),
		port:   cfg.Port,
	}
	s.router.Use(gin.Recovery())
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", s.handleHealth)
	s.router.GET("/api/protocols", s.handleListProtocols)
	s.router.GET("/api/protocols/:slug", s.handleGetProtocol)
	s.router.GET("/api/summary", s.handleSummary)
}

// Router exposes the configured engine for tests.
func (s *Server) Router() http.Handler {
	return s.router
}

// Start runs the API server until it fails.
func (s *Server) Start() error {
	addr := ":" + s.port
	s.logger.Info().Str("addr", addr).Msg("starting API")
	return s.router.Run(addr)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleListProtocols returns the collection, optionally re-sorted and
// filtered with the same semantics as the dashboard controls.
func (s *Server) handleListProtocols(c *gin.Context) {
	protocols, err := s.reader.LoadAll(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load protocols")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load protocols"})
		return
	}

	if filter := c.Query("category"); filter != "" {
		protocols = scoring.FilterByCategory(protocols, scoring.ParseCategory(filter))
	}
	if sortKey := c.Query("sort"); sortKey != "" {
		protocols = scoring.SortBy(protocols, scoring.ParseSortKey(sortKey))
	}

	c.JSON(http.StatusOK, gin.H{
		"count":     len(protocols),
		"protocols": protocols,
	})
}

func (s *Server) handleGetProtocol(c *gin.Context) {
	slug := core.Slug(c.Param("slug"))

	p, err := s.reader.LoadBySlug(c.Request.Context(), slug)
	if err != nil {
		if core.IsNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "protocol not found", "slug": slug})
			return
		}
		s.logger.Error().Err(err).Str("slug", slug.String()).Msg("failed to load protocol")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load protocol"})
		return
	}

	kafkaAvg := scoring.AverageSeverity(p.KafkaIndex.Dimensions())
	dangerAvg := scoring.AverageSeverity(p.Dangerous.Dimensions())
	c.JSON(http.StatusOK, gin.H{
		"protocol": p,
		"derived": gin.H{
			"category":         scoring.Categorize(*p),
			"kafkaAverage":     kafkaAvg,
			"kafkaBucket":      scoring.BucketAverage(kafkaAvg),
			"dangerousAverage": dangerAvg,
			"dangerousBucket":  scoring.BucketAverage(dangerAvg),
		},
	})
}

// handleSummary returns the risk tallies used for the dashboard badges.
// Levels with no occurrences are omitted, not reported as zero.
func (s *Server) handleSummary(c *gin.Context) {
	protocols, err := s.reader.LoadAll(c.Request.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load protocols")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load protocols"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(protocols),
		"riskCounts": scoring.RiskCounts(protocols),
	})
}
