package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	accountingapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/accounting"
)

// AccountingHandler handles expense, asset, income, tax and summary endpoints
type AccountingHandler struct {
	BaseHandler
	expenseService *accountingapp.ExpenseService
	assetService   *accountingapp.AssetService
	incomeService  *accountingapp.IncomeService
	taxService     *accountingapp.TaxService
	summaryService *accountingapp.SummaryService
}

// NewAccountingHandler creates a new AccountingHandler
func NewAccountingHandler(
	expenseService *accountingapp.ExpenseService,
	assetService *accountingapp.AssetService,
	incomeService *accountingapp.IncomeService,
	taxService *accountingapp.TaxService,
	summaryService *accountingapp.SummaryService,
) *AccountingHandler {
	return &AccountingHandler{
		expenseService: expenseService,
		assetService:   assetService,
		incomeService:  incomeService,
		taxService:     taxService,
		summaryService: summaryService,
	}
}

// DisposeAssetRequest represents a request to dispose of or sell an asset
type DisposeAssetRequest struct {
	Status string `json:"status" binding:"required,oneof=disposed sold"`
}

// CreateExpense godoc
// @Summary      Record an expense
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        request body accounting.CreateExpenseRequest true "Expense details"
// @Success      201 {object} dto.Response{data=accounting.ExpenseResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses [post]
func (h *AccountingHandler) CreateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req accountingapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, expense)
}

// GetExpense godoc
// @Summary      Get expense by ID
// @Tags         accounting
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Success      200 {object} dto.Response{data=accounting.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses/{id} [get]
func (h *AccountingHandler) GetExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.GetByID(c.Request.Context(), ownerID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// ListExpenses godoc
// @Summary      List expenses
// @Tags         accounting
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search by description or receipt reference"
// @Param        category query string false "Filter by category"
// @Param        payment_status query string false "Filter by payment status" Enums(pending, paid)
// @Param        recurring query bool false "Filter by recurring flag"
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]accounting.ExpenseResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /accounting/expenses [get]
func (h *AccountingHandler) ListExpenses(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter accountingapp.ExpenseListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	expenses, total, err := h.expenseService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, expenses, total, filter.Page, filter.PageSize)
}

// UpdateExpense godoc
// @Summary      Update an expense
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Param        request body accounting.UpdateExpenseRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=accounting.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses/{id} [put]
func (h *AccountingHandler) UpdateExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	var req accountingapp.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	expense, err := h.expenseService.Update(c.Request.Context(), ownerID, expenseID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// MarkExpensePaid godoc
// @Summary      Mark an expense as paid
// @Tags         accounting
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Success      200 {object} dto.Response{data=accounting.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses/{id}/mark-paid [post]
func (h *AccountingHandler) MarkExpensePaid(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.MarkPaid(c.Request.Context(), ownerID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// MarkExpensePending godoc
// @Summary      Revert an expense to pending
// @Tags         accounting
// @Produce      json
// @Param        id path string true "Expense ID" format(uuid)
// @Success      200 {object} dto.Response{data=accounting.ExpenseResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses/{id}/mark-pending [post]
func (h *AccountingHandler) MarkExpensePending(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	expense, err := h.expenseService.MarkPending(c.Request.Context(), ownerID, expenseID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, expense)
}

// DeleteExpense godoc
// @Summary      Delete an expense
// @Tags         accounting
// @Param        id path string true "Expense ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/expenses/{id} [delete]
func (h *AccountingHandler) DeleteExpense(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	expenseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID format")
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), ownerID, expenseID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateAsset godoc
// @Summary      Record an asset
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        request body accounting.CreateAssetRequest true "Asset details"
// @Success      201 {object} dto.Response{data=accounting.AssetResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/assets [post]
func (h *AccountingHandler) CreateAsset(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req accountingapp.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	asset, err := h.assetService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, asset)
}

// GetAsset godoc
// @Summary      Get asset by ID
// @Tags         accounting
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Success      200 {object} dto.Response{data=accounting.AssetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/assets/{id} [get]
func (h *AccountingHandler) GetAsset(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	asset, err := h.assetService.GetByID(c.Request.Context(), ownerID, assetID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, asset)
}

// ListAssets godoc
// @Summary      List assets
// @Tags         accounting
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search by name"
// @Param        category query string false "Filter by category"
// @Param        status query string false "Filter by status" Enums(active, disposed, sold)
// @Success      200 {object} dto.Response{data=[]accounting.AssetResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /accounting/assets [get]
func (h *AccountingHandler) ListAssets(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter accountingapp.AssetListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	assets, total, err := h.assetService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, assets, total, filter.Page, filter.PageSize)
}

// UpdateAsset godoc
// @Summary      Update an asset
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Param        request body accounting.UpdateAssetRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=accounting.AssetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/assets/{id} [put]
func (h *AccountingHandler) UpdateAsset(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req accountingapp.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	asset, err := h.assetService.Update(c.Request.Context(), ownerID, assetID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, asset)
}

// DisposeAsset godoc
// @Summary      Dispose of or sell an asset
// @Tags         accounting
// @Accept       json
// @Produce      json
// @Param        id path string true "Asset ID" format(uuid)
// @Param        request body DisposeAssetRequest true "Disposal status"
// @Success      200 {object} dto.Response{data=accounting.AssetResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/assets/{id}/dispose [post]
func (h *AccountingHandler) DisposeAsset(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid asset ID format")
		return
	}

	var req DisposeAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	asset, err := h.assetService.Dispose(c.Request.Context(), ownerID, assetID, req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, asset)
}

// ListIncome godoc
// @Summary      List income records
// @Description  List the income projection, newest first
// @Tags         accounting
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        source query string false "Filter by source" Enums(sale, service)
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]accounting.IncomeRecordResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /accounting/income [get]
func (h *AccountingHandler) ListIncome(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter accountingapp.IncomeListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	records, total, err := h.incomeService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, records, total, filter.Page, filter.PageSize)
}

// GetMonthlyIncome godoc
// @Summary      Income total for a calendar month
// @Tags         accounting
// @Produce      json
// @Param        year query int true "Year"
// @Param        month query int true "Month (1-12)"
// @Success      200 {object} dto.Response{data=accounting.MonthlyIncomeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/income/monthly [get]
func (h *AccountingHandler) GetMonthlyIncome(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req accountingapp.MonthlyIncomeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	total, err := h.incomeService.MonthlyTotal(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, total)
}

// GetTaxMonth godoc
// @Summary      Get turnover tax for a month
// @Tags         accounting
// @Produce      json
// @Param        year path int true "Year"
// @Param        month path int true "Month (1-12)"
// @Success      200 {object} dto.Response{data=accounting.TurnoverTaxResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/tax/{year}/{month} [get]
func (h *AccountingHandler) GetTaxMonth(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil {
		h.BadRequest(c, "Invalid month")
		return
	}

	position, err := h.taxService.GetMonth(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, position)
}

// GetTaxYear godoc
// @Summary      Get the annual turnover tax position
// @Tags         accounting
// @Produce      json
// @Param        year path int true "Year"
// @Success      200 {object} dto.Response{data=accounting.AnnualTaxPositionResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/tax/{year} [get]
func (h *AccountingHandler) GetTaxYear(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		h.BadRequest(c, "Invalid year")
		return
	}

	position, err := h.taxService.GetYear(c.Request.Context(), ownerID, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, position)
}

// GetSummary godoc
// @Summary      Get the financial summary for a month
// @Description  Defaults to the current calendar month
// @Tags         accounting
// @Produce      json
// @Param        year query int false "Year"
// @Param        month query int false "Month (1-12)"
// @Success      200 {object} dto.Response{data=accounting.FinancialSummaryResponse}
// @Security     BearerAuth
// @Router       /accounting/summary [get]
func (h *AccountingHandler) GetSummary(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	year, month, ok := h.bindSummaryMonth(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.GetMonth(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// ListSummaryMonths godoc
// @Summary      List monthly summaries for a year
// @Tags         accounting
// @Produce      json
// @Param        year query int true "Year"
// @Success      200 {object} dto.Response{data=[]accounting.FinancialSummaryResponse}
// @Security     BearerAuth
// @Router       /accounting/summary/months [get]
func (h *AccountingHandler) ListSummaryMonths(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.BadRequest(c, "year must be a four digit year")
		return
	}

	summaries, err := h.summaryService.ListYear(c.Request.Context(), ownerID, year)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summaries)
}

// bindSummaryMonth reads the optional year/month query pair, defaulting
// to the current calendar month
func (h *AccountingHandler) bindSummaryMonth(c *gin.Context) (int, int, bool) {
	var q accountingapp.SummaryMonthQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.BindError(c, err)
		return 0, 0, false
	}

	now := time.Now()
	if q.Year == 0 {
		q.Year = now.Year()
	}
	if q.Month == 0 {
		q.Month = int(now.Month())
	}
	return q.Year, q.Month, true
}

// GetPeriodSummary godoc
// @Summary      Financial position for a date range
// @Description  Revenue, expenses and net profit computed from the ledgers
// @Tags         accounting
// @Produce      json
// @Param        start_date query string true "Start date (YYYY-MM-DD)"
// @Param        end_date query string true "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=accounting.PeriodSummaryResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /accounting/summary/period [get]
func (h *AccountingHandler) GetPeriodSummary(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req accountingapp.PeriodSummaryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}

	summary, err := h.summaryService.Period(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}

// RecomputeSummary godoc
// @Summary      Recompute one month's financial summary
// @Description  Rebuild the month from source records; defaults to the current month
// @Tags         accounting
// @Produce      json
// @Param        year query int false "Year"
// @Param        month query int false "Month (1-12)"
// @Success      200 {object} dto.Response{data=accounting.FinancialSummaryResponse}
// @Security     BearerAuth
// @Router       /accounting/summary/recompute [post]
func (h *AccountingHandler) RecomputeSummary(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	year, month, ok := h.bindSummaryMonth(c)
	if !ok {
		return
	}

	summary, err := h.summaryService.Recompute(c.Request.Context(), ownerID, year, month)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, summary)
}
