package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"volunteer-match/internal/calculator"
	"volunteer-match/internal/matcher"
	"volunteer-match/internal/models"
)

const WelcomeMessage = "Welcome to the Volunteer Matching API!"

// Response messages
const (
	MsgLocationRequired      = "Location is required."
	MsgInvalidLocation       = "Invalid location format. Use lat,lon"
	MsgDatasetUnavailable    = "Database file not found or empty."
	MsgInvalidStoredLocation = "Invalid volunteer location format in database."
	MsgNoMatches             = "No volunteers found matching the criteria."
	MsgInvalidRequestBody    = "Invalid request body."
	MsgInternalError         = "Internal server error."
)

type Handler struct {
	matcher *matcher.Matcher
	log     *zap.Logger
}

func NewHandler(m *matcher.Matcher, log *zap.Logger) *Handler {
	return &Handler{matcher: m, log: log}
}

// Welcome handles GET /.
func (h *Handler) Welcome(c *gin.Context) {
	c.String(http.StatusOK, WelcomeMessage)
}

// FindMatches handles POST /find_matches.
func (h *Handler) FindMatches(c *gin.Context) {
	var q models.Query
	// An empty body is an empty query, reported below as a missing location.
	if err := c.ShouldBindJSON(&q); err != nil && !errors.Is(err, io.EOF) {
		h.log.Debug("bad request body", zap.Error(err), zap.String("request_id", RequestID(c)))
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidRequestBody})
		return
	}

	matches, err := h.matcher.Find(q)
	if err != nil {
		status, body := errorResponse(err)
		if status >= http.StatusInternalServerError {
			h.log.Error("find matches failed", zap.Error(err), zap.String("request_id", RequestID(c)))
		}
		c.JSON(status, body)
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// errorResponse maps matcher errors to a status code and JSON payload.
func errorResponse(err error) (int, gin.H) {
	switch {
	case errors.Is(err, matcher.ErrMissingLocation):
		return http.StatusBadRequest, gin.H{"error": MsgLocationRequired}
	case errors.Is(err, calculator.ErrInvalidCoordinateFormat):
		return http.StatusBadRequest, gin.H{"error": MsgInvalidLocation}
	case errors.Is(err, matcher.ErrEmptyDataset):
		return http.StatusInternalServerError, gin.H{"error": MsgDatasetUnavailable}
	case errors.Is(err, calculator.ErrMalformedStoredLocation):
		return http.StatusInternalServerError, gin.H{"error": MsgInvalidStoredLocation}
	case errors.Is(err, matcher.ErrNoMatch):
		return http.StatusNotFound, gin.H{"message": MsgNoMatches}
	default:
		return http.StatusInternalServerError, gin.H{"error": MsgInternalError}
	}
}
