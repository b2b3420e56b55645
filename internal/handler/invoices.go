package handler

import (
	"net/http"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"
	"github.com/Jhanky/Energy4Cero-sub001/internal/service"

	"github.com/gin-gonic/gin"
)

type InvoicesHandler struct{ svc service.InvoicingService }

func NewInvoicesHandler(svc service.InvoicingService) *InvoicesHandler {
	return &InvoicesHandler{svc: svc}
}

// GetByQuotation godoc
// @Summary      Latest electronic invoice for a quotation
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Quotation ID"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/quotations/{id}/invoice [get]
func (h *InvoicesHandler) GetByQuotation(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.GetByQuotation(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DownloadPDF godoc
// @Summary      Download the proposal PDF of an invoice
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Success      200 {file} binary
// @Failure      404 {object} apierror.APIError
// @Router       /v1/invoices/{id}/pdf [get]
func (h *InvoicesHandler) DownloadPDF(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	path, name, err := h.svc.PDFFile(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	c.FileAttachment(path, name)
}

// Retry godoc
// @Summary      Re-enqueue a failed invoice for issuance
// @Tags         invoices
// @Security     BearerAuth
// @Param        id path string true "Invoice ID"
// @Success      202
// @Failure      400 {object} apierror.APIError
// @Router       /v1/invoices/{id}/retry [post]
func (h *InvoicesHandler) Retry(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Retry(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.Status(http.StatusAccepted)
}
