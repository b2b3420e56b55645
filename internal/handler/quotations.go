package handler

import (
	"net/http"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"
	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type QuotationsHandler struct{ svc service.QuotationService }

func NewQuotationsHandler(svc service.QuotationService) *QuotationsHandler {
	return &QuotationsHandler{svc: svc}
}

// Create godoc
// @Summary      Create a quotation
// @Description  Creates a quotation: resolves catalog snapshots, derives the panel count from the target power, applies the creation profit policy and computes the layered cost summary.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateQuotationRequest true "Quotation payload"
// @Success      201  {object} dto.QuotationResponse
// @Failure      400  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/quotations [post]
func (h *QuotationsHandler) Create(c *gin.Context) {
	var req dto.CreateQuotationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Update godoc
// @Summary      Update a quotation
// @Description  Whole-item replace: rows with used_product_id/item_id update, rows without insert, stored rows not listed delete. All derived figures are recomputed.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Quotation UUID"
// @Param        body body dto.UpdateQuotationRequest true "Quotation payload"
// @Success      200  {object} dto.QuotationResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/quotations/{id} [put]
func (h *QuotationsHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuotationRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary      Get a quotation
// @Description  Returns the full aggregate with resolved parameters (company defaults fill missing rates at display time, nothing is persisted).
// @Tags         quotations
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quotation UUID"
// @Success      200 {object} dto.QuotationResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotations/{id} [get]
func (h *QuotationsHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary      List quotations
// @Tags         quotations
// @Produce      json
// @Security     BearerAuth
// @Param        status_id query int    false "Filter by status id"
// @Param        client_id query string false "Filter by client UUID"
// @Param        page      query int    false "Page (default 1)"
// @Param        limit     query int    false "Rows per page (default 50)"
// @Success      200 {object} dto.QuotationListResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/quotations [get]
func (h *QuotationsHandler) List(c *gin.Context) {
	var filter dto.QuotationFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list quotations"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ChangeStatus godoc
// @Summary      Change quotation status
// @Description  Validates the target against the fixed status catalog. Moving to Contracted triggers asynchronous electronic invoicing.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Quotation UUID"
// @Param        body body dto.ChangeStatusRequest true "Target status"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /v1/quotations/{id}/status [patch]
func (h *QuotationsHandler) ChangeStatus(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.ChangeStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ChangeStatus(c.Request.Context(), id, req.StatusID); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete godoc
// @Summary      Delete a quotation
// @Description  Hard delete of the aggregate, any status. Child rows cascade.
// @Tags         quotations
// @Security     BearerAuth
// @Param        id path string true "Quotation UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotations/{id} [delete]
func (h *QuotationsHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// Recalculate godoc
// @Summary      Recalculate a cost summary
// @Description  Stateless preview: recomputes line totals and the layered summary from on-screen values. Nothing is persisted.
// @Tags         quotations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.RecalculateRequest true "Lines and rates"
// @Success      200  {object} dto.CostSummaryResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/quotations/recalculate [post]
func (h *QuotationsHandler) Recalculate(c *gin.Context) {
	var req dto.RecalculateRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Recalculate(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Send godoc
// @Summary      Send a quotation to the client
// @Description  Marks the quotation Sent and enqueues the proposal PDF + email job.
// @Tags         quotations
// @Security     BearerAuth
// @Param        id path string true "Quotation UUID"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/quotations/{id}/send [post]
func (h *QuotationsHandler) Send(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Send(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}

// ListStatuses godoc
// @Summary      List quotation statuses
// @Tags         quotations
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} dto.StatusResponse
// @Router       /v1/quotations/statuses [get]
func (h *QuotationsHandler) ListStatuses(c *gin.Context) {
	resp, err := h.svc.ListStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list statuses"))
		return
	}
	c.JSON(http.StatusOK, resp)
}
