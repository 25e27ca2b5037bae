package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/application/service"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/request"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/response"
	"github.com/ashramseva/donation-api/pkg/receiptdoc"
)

// ReceiptHandler handles receipt generation HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// generateOptions reads the per-request pipeline tweaks from the query
// string: ?backend=pdf|browser and ?include_logos=true|false.
func generateOptions(c *gin.Context) service.GenerateOptions {
	opts := service.GenerateOptions{
		BackendHint: c.Query("backend"),
	}
	if v := c.Query("include_logos"); v != "" {
		include := v == "true" || v == "1"
		opts.IncludeLogos = &include
	}
	return opts
}

// writePDF sends the rendered buffer as a file download.
func writePDF(c *gin.Context, receiptNumber, contentType string, data []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "Receipt-"+receiptNumber+".pdf"))
	c.Data(200, contentType, data)
}

// Generate renders a receipt from an ad-hoc record without storing anything
func (h *ReceiptHandler) Generate(c *gin.Context) {
	var req request.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	rec := receiptdoc.Record{
		ReceiptNumber:   req.ReceiptNumber,
		DonorName:       req.DonorName,
		DonorID:         req.DonorID,
		Amount:          req.Amount,
		DonationType:    req.DonationType,
		PaymentMode:     req.PaymentMode,
		DateOfDonation:  req.DateOfDonation,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		StartDateNepali: req.StartDateBS,
		EndDateNepali:   req.EndDateBS,
		Notes:           req.Notes,
		CreatedBy:       req.CreatedBy,
	}

	data, contentType, err := h.receiptService.Generate(c.Request.Context(), rec, generateOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	writePDF(c, req.ReceiptNumber, contentType, data)
}

// GenerateForDonation renders the receipt of a stored donation
func (h *ReceiptHandler) GenerateForDonation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donation ID")
		return
	}

	data, contentType, donation, err := h.receiptService.GenerateForDonation(c.Request.Context(), id, generateOptions(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	writePDF(c, donation.ReceiptNumber, contentType, data)
}

// EmailReceipt renders a stored donation's receipt and emails it to the donor
func (h *ReceiptHandler) EmailReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donation ID")
		return
	}

	if err := h.receiptService.EmailReceipt(c.Request.Context(), id, generateOptions(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt emailed successfully", nil)
}
