package handler

import (
	"net/http"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"
	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the three supply catalogs (panels, inverters,
// batteries). The endpoints are symmetric; only the panel ones carry full
// swagger annotations, the rest follow the same contract.
type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ── Panels ───────────────────────────────────────────────────────────────────

// CreatePanel godoc
// @Summary      Create a panel
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreatePanelRequest true "Panel"
// @Success      201  {object} dto.PanelResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/catalog/panels [post]
func (h *CatalogHandler) CreatePanel(c *gin.Context) {
	var req dto.CreatePanelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreatePanel(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetPanel godoc
// @Summary      Get a panel
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Panel UUID"
// @Success      200 {object} dto.PanelResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/catalog/panels/{id} [get]
func (h *CatalogHandler) GetPanel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetPanel(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListPanels godoc
// @Summary      List panels
// @Tags         catalog
// @Produce      json
// @Security     BearerAuth
// @Param        include_inactive query bool false "Include retired entries"
// @Success      200 {array} dto.PanelResponse
// @Router       /v1/catalog/panels [get]
func (h *CatalogHandler) ListPanels(c *gin.Context) {
	resp, err := h.svc.ListPanels(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list panels"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePanel godoc
// @Summary      Update a panel
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Panel UUID"
// @Param        body body dto.UpdatePanelRequest true "Panel"
// @Success      200  {object} dto.PanelResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/catalog/panels/{id} [put]
func (h *CatalogHandler) UpdatePanel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePanelRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdatePanel(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePanel godoc
// @Summary      Retire a panel
// @Tags         catalog
// @Security     BearerAuth
// @Param        id path string true "Panel UUID"
// @Success      204
// @Router       /v1/catalog/panels/{id} [delete]
func (h *CatalogHandler) DeletePanel(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeletePanel(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Inverters ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateInverter(c *gin.Context) {
	var req dto.CreateInverterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateInverter(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) GetInverter(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetInverter(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListInverters(c *gin.Context) {
	resp, err := h.svc.ListInverters(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list inverters"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) UpdateInverter(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateInverterRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateInverter(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) DeleteInverter(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteInverter(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Batteries ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateBattery(c *gin.Context) {
	var req dto.CreateBatteryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CreateBattery(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CatalogHandler) GetBattery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetBattery(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) ListBatteries(c *gin.Context) {
	resp, err := h.svc.ListBatteries(c.Request.Context(), c.Query("include_inactive") == "true")
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list batteries"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) UpdateBattery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateBatteryRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UpdateBattery(c.Request.Context(), id, req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) DeleteBattery(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteBattery(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusNoContent)
}
