package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	inventoryapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/inventory"
)

// StockHandler handles inventory API endpoints
type StockHandler struct {
	BaseHandler
	stockService *inventoryapp.StockService
}

// NewStockHandler creates a new StockHandler
func NewStockHandler(stockService *inventoryapp.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
	}
}

// ListStock godoc
// @Summary      List stock levels
// @Description  List per-item stock with low-stock and out-of-stock filters
// @Tags         inventory
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search by item name"
// @Param        low_only query bool false "Only items at or below reorder level"
// @Param        out_only query bool false "Only items with no stock"
// @Success      200 {object} dto.Response{data=[]inventory.StockLevelResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /inventory/stock [get]
func (h *StockHandler) ListStock(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter inventoryapp.StockListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	levels, total, err := h.stockService.ListStock(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, levels, total, filter.Page, filter.PageSize)
}

// GetStock godoc
// @Summary      Get stock for an item
// @Tags         inventory
// @Produce      json
// @Param        item_id path string true "Item ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventory.StockLevelResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/stock/{item_id} [get]
func (h *StockHandler) GetStock(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	level, err := h.stockService.GetStock(c.Request.Context(), ownerID, itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, level)
}

// RecordMovement godoc
// @Summary      Record a stock movement
// @Description  Record an opening stock, stock in, stock out, damage or theft movement
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventory.RecordMovementRequest true "Movement details"
// @Success      201 {object} dto.Response{data=inventory.StockMovementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/movements [post]
func (h *StockHandler) RecordMovement(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.stockService.RecordMovement(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// AdjustStock godoc
// @Summary      Adjust stock to a counted quantity
// @Description  Set the absolute stock count after a physical count
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        request body inventory.AdjustStockRequest true "Adjustment details"
// @Success      201 {object} dto.Response{data=inventory.StockMovementResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/adjustments [post]
func (h *StockHandler) AdjustStock(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req inventoryapp.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	movement, err := h.stockService.AdjustStock(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, movement)
}

// SetReorderLevel godoc
// @Summary      Set an item's reorder level
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        item_id path string true "Item ID" format(uuid)
// @Param        request body inventory.SetReorderLevelRequest true "New reorder level"
// @Success      200 {object} dto.Response{data=inventory.StockLevelResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/stock/{item_id}/reorder-level [put]
func (h *StockHandler) SetReorderLevel(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var req inventoryapp.SetReorderLevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	level, err := h.stockService.SetReorderLevel(c.Request.Context(), ownerID, itemID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, level)
}

// ListMovements godoc
// @Summary      List movements for an item
// @Description  Page through the item's movement ledger, newest first
// @Tags         inventory
// @Produce      json
// @Param        item_id path string true "Item ID" format(uuid)
// @Param        type query string false "Filter by movement type"
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]inventory.StockMovementResponse,meta=dto.Meta}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/stock/{item_id}/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID format")
		return
	}

	var filter inventoryapp.MovementListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	movements, total, err := h.stockService.ListMovements(c.Request.Context(), ownerID, itemID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, movements, total, filter.Page, filter.PageSize)
}

// ListAlerts godoc
// @Summary      List stock alerts
// @Tags         inventory
// @Produce      json
// @Param        status query string false "Filter by status" Enums(active, acknowledged, resolved)
// @Param        type query string false "Filter by type" Enums(low_stock, out_of_stock)
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Success      200 {object} dto.Response{data=[]inventory.StockAlertResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /inventory/alerts [get]
func (h *StockHandler) ListAlerts(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter inventoryapp.AlertListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	alerts, total, err := h.stockService.ListAlerts(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, alerts, total, filter.Page, filter.PageSize)
}

// AcknowledgeAlert godoc
// @Summary      Acknowledge a stock alert
// @Tags         inventory
// @Produce      json
// @Param        id path string true "Alert ID" format(uuid)
// @Success      200 {object} dto.Response{data=inventory.StockAlertResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /inventory/alerts/{id}/acknowledge [post]
func (h *StockHandler) AcknowledgeAlert(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid alert ID format")
		return
	}

	alert, err := h.stockService.AcknowledgeAlert(c.Request.Context(), ownerID, alertID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, alert)
}
