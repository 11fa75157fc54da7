package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wethelder/wethelder/internal/core/domain"
	"github.com/wethelder/wethelder/internal/core/ports/driving"
	"github.com/wethelder/wethelder/internal/logger"
)

// Static Dutch error messages. Internals never leak to clients.
const (
	msgInvalidRequest = "De vraag is leeg of te lang."
	msgRateLimited    = "U heeft het maximum aantal vragen voor vandaag bereikt. Probeer het morgen opnieuw."
	msgInternalError  = "Er is iets misgegaan. Probeer het later opnieuw."
	msgAskUnavailable = "De vraagfunctie is momenteel niet beschikbaar."
)

// searchRequest is the POST /api/zoeken body.
type searchRequest struct {
	Query   string              `json:"vraag" binding:"required"`
	Context domain.QueryContext `json:"context"`
	Limit   int                 `json:"limiet"`
}

// askRequest is the POST /api/vragen body.
type askRequest struct {
	Query   string              `json:"vraag" binding:"required"`
	Context domain.QueryContext `json:"context"`

	// Stream requests a server-sent-events answer. Default true.
	Stream *bool `json:"stream"`
}

// handleSearch runs the reference pipeline without LLM involvement.
func (s *Server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"fout": msgInvalidRequest})
		return
	}

	query := domain.NewSearchQuery(req.Query, req.Context)
	result, err := s.ports.Search.Search(c.Request.Context(), query, driving.SearchOptions{
		Limit: req.Limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// handleAsk answers one question. By default the answer streams as
// server-sent events after a JSON prelude carrying the references;
// with stream disabled the complete result returns as one JSON body.
func (s *Server) handleAsk(c *gin.Context) {
	if s.ports.Ask == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"fout": msgAskUnavailable})
		return
	}

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"fout": msgInvalidRequest})
		return
	}

	ask := driving.AskRequest{
		Query:     domain.NewSearchQuery(req.Query, req.Context),
		ClientKey: clientIP(c),
	}

	if req.Stream != nil && !*req.Stream {
		result, err := s.ports.Ask.Ask(c.Request.Context(), ask)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
		return
	}

	s.streamAnswer(c, ask)
}

// streamAnswer delivers the answer as server-sent events: "antwoord"
// events carry answer chunks, a "bronnen" event carries the references
// and reliability label once the answer completes, and a final
// "klaar" event carries the partial flag. A disconnect mid-stream is
// normal; the service persists whatever accumulated.
func (s *Server) streamAnswer(c *gin.Context, ask driving.AskRequest) {
	// Headers go out with the first chunk, so a validation or quota
	// failure before any output can still answer with plain JSON.
	chunksSent := false
	result, err := s.ports.Ask.AskStream(c.Request.Context(), ask, func(chunk string) error {
		if !chunksSent {
			chunksSent = true
			c.Writer.Header().Set("Content-Type", "text/event-stream")
			c.Writer.Header().Set("Cache-Control", "no-cache")
			c.Writer.Header().Set("Connection", "keep-alive")
		}
		c.SSEvent("antwoord", chunk)
		c.Writer.Flush()
		return nil
	})

	if err != nil {
		if chunksSent {
			// Headers are out; all we can do is end the stream.
			logger.Warn("Stream failed after first chunk: %v", err)
			c.SSEvent("fout", msgInternalError)
			c.Writer.Flush()
			return
		}
		writeError(c, err)
		return
	}

	c.SSEvent("bronnen", result.Search)
	c.SSEvent("klaar", gin.H{"gedeeltelijk": result.Partial})
	c.Writer.Flush()
}

// handleHealth reports liveness.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// writeError maps domain errors onto HTTP statuses with static Dutch
// messages.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"fout": msgInvalidRequest})
	case errors.Is(err, domain.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"fout": msgRateLimited})
	default:
		logger.Error("Request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"fout": msgInternalError})
	}
}
