package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cms_archiver/internal/domain"
)

// transferResponse is the JSON body returned after a page is archived.
type transferResponse struct {
	Kind           string  `json:"kind"`
	Reason         string  `json:"reason"`
	Archived       int     `json:"archived"`
	Removed        int64   `json:"removed"`
	Notified       int     `json:"notified"`
	NotifyFailures int     `json:"notify_failures"`
	DeleteError    *string `json:"delete_error,omitempty"`
	DurationMS     int64   `json:"duration_ms"`
}

func newTransferResponse(stats *domain.TransferStats) transferResponse {
	resp := transferResponse{
		Kind:           stats.Kind,
		Reason:         string(stats.Reason),
		Archived:       stats.Archived,
		Removed:        stats.Removed,
		Notified:       stats.Notified,
		NotifyFailures: stats.NotifyFailures,
		DurationMS:     stats.Duration.Milliseconds(),
	}
	if stats.DeleteErr != nil {
		msg := stats.DeleteErr.Error()
		resp.DeleteError = &msg
	}
	return resp
}

func (r *Router) deletePage(c *gin.Context) {
	id, ok := parseID(c, "id", "page")
	if !ok {
		return
	}

	actor := strings.TrimSpace(c.GetHeader(actorHeader))
	if actor == "" {
		actor = defaultActor
	}

	// A client hanging up must not split the archive write from the live delete.
	stats, err := r.pages.ArchivePage(context.WithoutCancel(c.Request.Context()), id, actor)
	if err != nil {
		r.logger.Error("archive page failed", "page_id", id, "actor", actor, "error", err)
		handleArchiveError(c, err, "page")
		return
	}

	c.JSON(http.StatusOK, newTransferResponse(stats))
}

// parseID parses a positive integer id from a path parameter.
func parseID(c *gin.Context, param, entityType string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + entityType + " ID format",
		})
		return 0, false
	}
	return id, true
}

func handleArchiveError(c *gin.Context, err error, entityType string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": entityType + " not found",
		})
	case errors.Is(err, domain.ErrArchiveWrite):
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to archive " + entityType,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete " + entityType,
		})
	}
}
