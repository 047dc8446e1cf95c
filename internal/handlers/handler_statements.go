package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/greekrode/erpnext/internal/apperrors"
	"github.com/greekrode/erpnext/internal/core/domain"
	portssvc "github.com/greekrode/erpnext/internal/core/ports/services"
	"github.com/greekrode/erpnext/internal/dto"
	"github.com/greekrode/erpnext/internal/middleware"
)

// statementHandler handles HTTP requests related to financial statements
type statementHandler struct {
	statementService portssvc.StatementService
}

// newStatementHandler creates a new statementHandler
func newStatementHandler(ss portssvc.StatementService) *statementHandler {
	return &statementHandler{
		statementService: ss,
	}
}

// RegisterStatementRoutes registers routes related to financial statements
func RegisterStatementRoutes(rg *gin.RouterGroup, statementService portssvc.StatementService) {
	h := newStatementHandler(statementService)

	statementGroup := rg.Group("/reports")
	{
		statementGroup.GET("/balance-sheet", h.getBalanceSheet)
		statementGroup.GET("/profit-and-loss", h.getProfitAndLoss)
	}
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet across the requested fiscal years, sliced by periodicity
// @Tags reports
// @Produce json
// @Param company query string false "Company ID"
// @Param from_fiscal_year query string true "First fiscal year name"
// @Param to_fiscal_year query string true "Last fiscal year name"
// @Param periodicity query string false "Monthly, Quarterly, Half-Yearly or Yearly" default(Yearly)
// @Param filter_based_on query string false "Fiscal Year or Date Range" default(Fiscal Year)
// @Param period_start_date query string false "Range start (YYYY-MM-DD), for Date Range"
// @Param period_end_date query string false "Range end (YYYY-MM-DD), for Date Range"
// @Param accumulated_values query bool false "Report running balances instead of period movements"
// @Param presentation_currency query string false "Currency code shown on the report"
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal years not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/balance-sheet [get]
func (h *statementHandler) getBalanceSheet(c *gin.Context) {
	h.runStatement(c, "balance sheet", h.statementService.BalanceSheet)
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss statement across the requested fiscal years, sliced by periodicity
// @Tags reports
// @Produce json
// @Param company query string false "Company ID"
// @Param from_fiscal_year query string true "First fiscal year name"
// @Param to_fiscal_year query string true "Last fiscal year name"
// @Param periodicity query string false "Monthly, Quarterly, Half-Yearly or Yearly" default(Yearly)
// @Param filter_based_on query string false "Fiscal Year or Date Range" default(Fiscal Year)
// @Param period_start_date query string false "Range start (YYYY-MM-DD), for Date Range"
// @Param period_end_date query string false "Range end (YYYY-MM-DD), for Date Range"
// @Param accumulated_values query bool false "Report fiscal-year-to-date values instead of period movements"
// @Param presentation_currency query string false "Currency code shown on the report"
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Fiscal years not found"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profit-and-loss [get]
func (h *statementHandler) getProfitAndLoss(c *gin.Context) {
	h.runStatement(c, "profit and loss", h.statementService.ProfitAndLoss)
}

func (h *statementHandler) runStatement(c *gin.Context, reportName string, run func(ctx context.Context, filters domain.StatementFilters) (*domain.FinancialReport, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.StatementRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Invalid statement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	filters, err := req.ToStatementFilters()
	if err != nil {
		logger.Warn("Statement request failed validation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger = logger.With(
		slog.String("report", reportName),
		slog.String("company", filters.Company),
		slog.String("from_fiscal_year", filters.FromFiscalYear),
		slog.String("to_fiscal_year", filters.ToFiscalYear),
		slog.String("periodicity", string(filters.Periodicity)),
	)
	logger.Info("Received request to generate financial statement")

	report, err := run(c.Request.Context(), filters)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Statement filters rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Fiscal years not found for statement")
			c.JSON(http.StatusNotFound, gin.H{"error": "No fiscal years found for the requested range"})
		} else {
			logger.Error("Failed to generate financial statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}

	response := dto.ToFinancialReportResponse(report)

	logger.Info("Financial statement generated successfully", slog.Int("row_count", len(report.Rows)))
	c.JSON(http.StatusOK, response)
}
