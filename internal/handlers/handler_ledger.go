package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerforge/glposting/internal/apperrors"
	portssvc "github.com/ledgerforge/glposting/internal/core/ports/services"
	"github.com/ledgerforge/glposting/internal/middleware"
)

// ledgerHandler handles the read-side reporting endpoints.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

func newLedgerHandler(ledgerService portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledgerService: ledgerService}
}

func registerLedgerRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledgerService)
	ledger := rg.Group("/ledger")
	{
		ledger.GET("/accounts/:accountID/balance", h.getAccountBalance)
		ledger.GET("/accounts/:accountID/statement", h.getStatement)
		ledger.GET("/trial-balance", h.getTrialBalance)
	}
}

// parseDateQuery reads a YYYY-MM-DD query parameter, defaulting when absent.
func parseDateQuery(c *gin.Context, name string, fallback time.Time) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", raw)
}

// getAccountBalance returns an account's balance as of a date (defaults to today).
func (h *ledgerHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")

	asOf, err := parseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date; expected YYYY-MM-DD"})
		return
	}

	balance, err := h.ledgerService.AccountBalance(c.Request.Context(), tenantID, accountID, asOf)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get account balance", slog.String("error", err.Error()), slog.String("account_id", accountID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve balance"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accountID": accountID,
		"asOf":      asOf.Format("2006-01-02"),
		"balance":   balance,
	})
}

// getTrialBalance returns every account's net balance as of a date, with column totals.
func (h *ledgerHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}

	asOf, err := parseDateQuery(c, "asOf", time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asOf date; expected YYYY-MM-DD"})
		return
	}

	tb, err := h.ledgerService.TrialBalance(c.Request.Context(), tenantID, asOf)
	if err != nil {
		logger.Error("Failed to build trial balance", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build trial balance"})
		return
	}

	c.JSON(http.StatusOK, tb)
}

// getStatement returns an account's movements over a date range with running balances.
func (h *ledgerHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tenantID, ok := requireTenant(c)
	if !ok {
		return
	}
	accountID := c.Param("accountID")

	now := time.Now().UTC()
	from, err := parseDateQuery(c, "from", now.AddDate(0, -1, 0))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid from date; expected YYYY-MM-DD"})
		return
	}
	to, err := parseDateQuery(c, "to", now)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid to date; expected YYYY-MM-DD"})
		return
	}

	statement, err := h.ledgerService.StatementOfAccount(c.Request.Context(), tenantID, accountID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to build statement", slog.String("error", err.Error()), slog.String("account_id", accountID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		}
		return
	}

	c.JSON(http.StatusOK, statement)
}
