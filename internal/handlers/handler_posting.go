package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ledgerforge/glposting/internal/apperrors"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// postingHandler handles HTTP requests that create and reverse journal entries.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
}

func newPostingHandler(postingService portssvc.PostingSvcFacade) *postingHandler {
	return &postingHandler{postingService: postingService}
}

func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade) {
	h := newPostingHandler(postingService)
	rg.POST("/postings", h.postTransaction)
	entries := rg.Group("/entries")
	{
		entries.GET("", h.listEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
	}
}

// postTransaction posts one source transaction as a balanced journal entry.
func (h *postingHandler) postTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req dto.PostTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for postTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rule, err := req.Rule()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actorID := middleware.GetActorFromCtx(c.Request.Context())

	entry, err := h.postingService.Post(c.Request.Context(), tenantID, rule, actorID)
	if err != nil {
		h.respondPostingError(c, logger, err)
		return
	}

	logger.Info("Transaction posted",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("reference", entry.Reference.String()),
	)
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// reverseEntry voids a posted entry by appending a reversing entry.
func (h *postingHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	var req dto.ReverseEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for reverseEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorFromCtx(c.Request.Context())

	reversing, err := h.postingService.Reverse(c.Request.Context(), tenantID, entryID, req.Reason, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			h.respondPostingError(c, logger, err)
		}
		return
	}

	logger.Info("Entry reversed",
		slog.String("original_entry_id", entryID),
		slog.String("reversing_entry_id", reversing.EntryID),
	)
	c.JSON(http.StatusCreated, dto.ToEntryResponse(reversing))
}

// getEntry retrieves a journal entry with its lines.
func (h *postingHandler) getEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	entryID := c.Param("entryID")

	entry, err := h.postingService.GetEntryByID(c.Request.Context(), tenantID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		logger.Error("Failed to get entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve entry"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// listEntries returns the tenant's journal entries, newest first.
func (h *postingHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.postingService.ListEntries(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		logger.Error("Failed to list entries", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToEntryResponses(entries)})
}

// respondPostingError maps posting failures onto HTTP statuses. Unresolved accounts and
// unbalanced drafts are semantic failures of the request body, not server faults.
func (h *postingHandler) respondPostingError(c *gin.Context, logger *slog.Logger, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnresolvedAccount):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnbalancedEntry):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNumberRetryExhausted):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not allocate an entry number. Please retry."})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Posting failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to post transaction"})
	}
}
