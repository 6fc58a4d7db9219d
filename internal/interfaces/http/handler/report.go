package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/report"
)

// ReportHandler handles report API endpoints
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

func (h *ReportHandler) bindRange(c *gin.Context) (reportapp.RangeRequest, bool) {
	var rng reportapp.RangeRequest
	if err := c.ShouldBindQuery(&rng); err != nil {
		h.BindError(c, err)
		return rng, false
	}
	if rng.EndDate.Before(rng.StartDate) {
		h.BadRequest(c, "end_date must not be before start_date")
		return rng, false
	}
	return rng, true
}

// ProfitLoss godoc
// @Summary      Profit and loss report
// @Description  Revenue, expenses by category and net profit for a date range
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.ProfitLossReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/profit-loss [get]
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	result, err := h.reportService.ProfitLoss(c.Request.Context(), ownerID, rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Sales godoc
// @Summary      Sales report
// @Description  Totals, top items and a daily series for a date range
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.SalesReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	result, err := h.reportService.Sales(c.Request.Context(), ownerID, rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Expenses godoc
// @Summary      Expense report
// @Description  Totals by category and a daily series for a date range
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.ExpenseReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/expenses [get]
func (h *ReportHandler) Expenses(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	result, err := h.reportService.Expenses(c.Request.Context(), ownerID, rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Tax godoc
// @Summary      Tax report
// @Description  Monthly turnover tax positions across the range
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.TaxReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/tax [get]
func (h *ReportHandler) Tax(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	result, err := h.reportService.Tax(c.Request.Context(), ownerID, rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// Inventory godoc
// @Summary      Inventory report
// @Description  Stock position, movement counts and alert counts for a date range
// @Tags         reports
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=report.InventoryReport}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /reports/inventory [get]
func (h *ReportHandler) Inventory(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	rng, ok := h.bindRange(c)
	if !ok {
		return
	}

	result, err := h.reportService.Inventory(c.Request.Context(), ownerID, rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
