package handler

import (
	"net/http"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"
	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type CostCentersHandler struct{ svc service.CostCenterService }

func NewCostCentersHandler(svc service.CostCenterService) *CostCentersHandler {
	return &CostCentersHandler{svc: svc}
}

// Create godoc
// @Summary      Create a cost center
// @Tags         cost-centers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateCostCenterRequest true "Cost center"
// @Success      201  {object} dto.CostCenterResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/cost-centers [post]
func (h *CostCentersHandler) Create(c *gin.Context) {
	var req dto.CreateCostCenterRequest
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

func (h *CostCentersHandler) Get(c *gin.Context) {
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

func (h *CostCentersHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list cost centers"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CostCentersHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateCostCenterRequest
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

func (h *CostCentersHandler) Delete(c *gin.Context) {
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
