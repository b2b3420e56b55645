package handler

import (
	"net/http"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"
	"github.com/Jhanky/Energy4Cero-sub001/internal/dto"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientsHandler struct{ svc service.ClientService }

func NewClientsHandler(svc service.ClientService) *ClientsHandler {
	return &ClientsHandler{svc: svc}
}

// Create godoc
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CreateClientRequest true "Client"
// @Success      201  {object} dto.ClientResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/clients [post]
func (h *ClientsHandler) Create(c *gin.Context) {
	var req dto.CreateClientRequest
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

// Get godoc
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Client UUID"
// @Success      200 {object} dto.ClientResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clients/{id} [get]
func (h *ClientsHandler) Get(c *gin.Context) {
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
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        search query string false "Name or document fragment"
// @Success      200 {array} dto.ClientResponse
// @Router       /v1/clients [get]
func (h *ClientsHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("failed to list clients"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Update godoc
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "Client UUID"
// @Param        body body dto.UpdateClientRequest true "Client"
// @Success      200  {object} dto.ClientResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/clients/{id} [put]
func (h *ClientsHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateClientRequest
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

// Delete godoc
// @Summary      Deactivate a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id path string true "Client UUID"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /v1/clients/{id} [delete]
func (h *ClientsHandler) Delete(c *gin.Context) {
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
