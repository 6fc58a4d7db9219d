package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workforceapp "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/workforce"
)

// WorkforceHandler handles worker and work record API endpoints
type WorkforceHandler struct {
	BaseHandler
	workerService *workforceapp.WorkerService
	recordService *workforceapp.WorkRecordService
}

// NewWorkforceHandler creates a new WorkforceHandler
func NewWorkforceHandler(workerService *workforceapp.WorkerService, recordService *workforceapp.WorkRecordService) *WorkforceHandler {
	return &WorkforceHandler{
		workerService: workerService,
		recordService: recordService,
	}
}

// CreateWorker godoc
// @Summary      Add a worker
// @Tags         workforce
// @Accept       json
// @Produce      json
// @Param        request body workforce.CreateWorkerRequest true "Worker details"
// @Success      201 {object} dto.Response{data=workforce.WorkerResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/workers [post]
func (h *WorkforceHandler) CreateWorker(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req workforceapp.CreateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	worker, err := h.workerService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, worker)
}

// GetWorker godoc
// @Summary      Get worker by ID
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Worker ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/workers/{id} [get]
func (h *WorkforceHandler) GetWorker(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid worker ID format")
		return
	}

	worker, err := h.workerService.GetByID(c.Request.Context(), ownerID, workerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, worker)
}

// ListWorkers godoc
// @Summary      List workers
// @Tags         workforce
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        search query string false "Search by name or role"
// @Param        active query bool false "Filter by active state"
// @Success      200 {object} dto.Response{data=[]workforce.WorkerResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /workforce/workers [get]
func (h *WorkforceHandler) ListWorkers(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter workforceapp.WorkerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	workers, total, err := h.workerService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, workers, total, filter.Page, filter.PageSize)
}

// UpdateWorker godoc
// @Summary      Update a worker
// @Tags         workforce
// @Accept       json
// @Produce      json
// @Param        id path string true "Worker ID" format(uuid)
// @Param        request body workforce.UpdateWorkerRequest true "Fields to change"
// @Success      200 {object} dto.Response{data=workforce.WorkerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/workers/{id} [put]
func (h *WorkforceHandler) UpdateWorker(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid worker ID format")
		return
	}

	var req workforceapp.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	worker, err := h.workerService.Update(c.Request.Context(), ownerID, workerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, worker)
}

// ActivateWorker godoc
// @Summary      Activate a worker
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Worker ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/workers/{id}/activate [post]
func (h *WorkforceHandler) ActivateWorker(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid worker ID format")
		return
	}

	worker, err := h.workerService.Activate(c.Request.Context(), ownerID, workerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, worker)
}

// DeactivateWorker godoc
// @Summary      Deactivate a worker
// @Description  Hide the worker from new work records without deleting history
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Worker ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkerResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/workers/{id}/deactivate [post]
func (h *WorkforceHandler) DeactivateWorker(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	workerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid worker ID format")
		return
	}

	worker, err := h.workerService.Deactivate(c.Request.Context(), ownerID, workerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, worker)
}

// CreateWorkRecord godoc
// @Summary      Record performed work
// @Description  Record a performed service job, deriving the amount from the
// @Description  service pricing model and propagating it into service income
// @Tags         workforce
// @Accept       json
// @Produce      json
// @Param        request body workforce.CreateWorkRecordRequest true "Work record details"
// @Success      201 {object} dto.Response{data=workforce.WorkRecordResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/records [post]
func (h *WorkforceHandler) CreateWorkRecord(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req workforceapp.CreateWorkRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	record, err := h.recordService.Create(c.Request.Context(), ownerID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, record)
}

// GetWorkRecord godoc
// @Summary      Get work record by ID
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Work record ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkRecordResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/records/{id} [get]
func (h *WorkforceHandler) GetWorkRecord(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work record ID format")
		return
	}

	record, err := h.recordService.GetByID(c.Request.Context(), ownerID, recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// ListWorkRecords godoc
// @Summary      List work records
// @Tags         workforce
// @Produce      json
// @Param        page query int false "Page number"
// @Param        page_size query int false "Page size"
// @Param        worker_id query string false "Filter by worker" format(uuid)
// @Param        payment_status query string false "Filter by payment status" Enums(pending, paid)
// @Param        start_date query string false "Start date (YYYY-MM-DD)"
// @Param        end_date query string false "End date (YYYY-MM-DD)"
// @Success      200 {object} dto.Response{data=[]workforce.WorkRecordResponse,meta=dto.Meta}
// @Security     BearerAuth
// @Router       /workforce/records [get]
func (h *WorkforceHandler) ListWorkRecords(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var filter workforceapp.WorkRecordListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	records, total, err := h.recordService.List(c.Request.Context(), ownerID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, records, total, filter.Page, filter.PageSize)
}

// MarkWorkRecordPaid godoc
// @Summary      Mark a work record as paid out
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Work record ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkRecordResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/records/{id}/mark-paid [post]
func (h *WorkforceHandler) MarkWorkRecordPaid(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work record ID format")
		return
	}

	record, err := h.recordService.MarkPaid(c.Request.Context(), ownerID, recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// MarkWorkRecordUnpaid godoc
// @Summary      Revert a work record to pending payout
// @Tags         workforce
// @Produce      json
// @Param        id path string true "Work record ID" format(uuid)
// @Success      200 {object} dto.Response{data=workforce.WorkRecordResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/records/{id}/mark-unpaid [post]
func (h *WorkforceHandler) MarkWorkRecordUnpaid(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work record ID format")
		return
	}

	record, err := h.recordService.MarkUnpaid(c.Request.Context(), ownerID, recordID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, record)
}

// DeleteWorkRecord godoc
// @Summary      Delete a work record
// @Description  Remove a work record and reverse its service income contribution
// @Tags         workforce
// @Param        id path string true "Work record ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Security     BearerAuth
// @Router       /workforce/records/{id} [delete]
func (h *WorkforceHandler) DeleteWorkRecord(c *gin.Context) {
	ownerID, err := getOwnerID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid work record ID format")
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), ownerID, recordID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
