package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerforge/glposting/internal/apperrors"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/dto"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// numberingHandler exposes the numbering authority for caller-owned document types.
// Journal entry numbers are never issued here; the posting service allocates those.
type numberingHandler struct {
	numberingService portssvc.NumberingSvcFacade
}

func newNumberingHandler(numberingService portssvc.NumberingSvcFacade) *numberingHandler {
	return &numberingHandler{numberingService: numberingService}
}

func registerNumberingRoutes(rg *gin.RouterGroup, numberingService portssvc.NumberingSvcFacade) {
	h := newNumberingHandler(numberingService)
	rg.POST("/numbers", h.issueNumber)
}

// issueNumber allocates and records the next number for a document type.
func (h *numberingHandler) issueNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	var req dto.IssueNumberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for issueNumber", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	actorID := middleware.GetActorFromCtx(c.Request.Context())

	number, err := h.numberingService.Issue(c.Request.Context(), tenantID, req.DocType, req.Prefix, req.Width, actorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrConfiguration):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNumberRetryExhausted):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Could not allocate a document number. Please retry."})
		default:
			logger.Error("Failed to issue number", slog.String("error", err.Error()), slog.String("doc_type", string(req.DocType)))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue number"})
		}
		return
	}

	logger.Info("Number issued", slog.String("doc_type", string(req.DocType)), slog.String("number", number))
	c.JSON(http.StatusCreated, dto.IssueNumberResponse{DocType: req.DocType, Number: number})
}
