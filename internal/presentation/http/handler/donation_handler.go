package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/application/service"
	"github.com/ashramseva/donation-api/internal/domain/enum"
	"github.com/ashramseva/donation-api/internal/domain/repository"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/request"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/response"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

// DonationHandler handles donation-related HTTP requests
type DonationHandler struct {
	donationService *service.DonationService
	exportService   *service.ExportService
}

// NewDonationHandler creates a new donation handler
func NewDonationHandler(donationService *service.DonationService, exportService *service.ExportService) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
		exportService:   exportService,
	}
}

// filterFromQuery builds the repository filter from query parameters
func filterFromQuery(c *gin.Context) (repository.DonationFilter, error) {
	var filter repository.DonationFilter
	filter.Search = c.Query("search")

	if donorIDStr := c.Query("donor_id"); donorIDStr != "" {
		donorID, err := uuid.Parse(donorIDStr)
		if err != nil {
			return filter, fmt.Errorf("invalid donor_id")
		}
		filter.DonorID = &donorID
	}
	if typeStr := c.Query("donation_type"); typeStr != "" {
		t := enum.DonationType(typeStr)
		filter.DonationType = &t
	}
	if modeStr := c.Query("payment_mode"); modeStr != "" {
		m := enum.PaymentMode(modeStr)
		filter.PaymentMode = &m
	}
	if fromStr := c.Query("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return filter, fmt.Errorf("invalid from date, expected YYYY-MM-DD")
		}
		filter.From = &from
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return filter, fmt.Errorf("invalid to date, expected YYYY-MM-DD")
		}
		// Include the whole end day
		end := to.Add(24*time.Hour - time.Second)
		filter.To = &end
	}

	return filter, nil
}

// List handles listing donations
func (h *DonationHandler) List(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.donationService.ListDonations(c.Request.Context(), params, filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Donations retrieved successfully", result)
}

// Create handles recording a donation
func (h *DonationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.CreateDonationInput{
		UserID:         *userID,
		DonorID:        req.DonorID,
		DonorName:      req.DonorName,
		Amount:         req.Amount,
		DonationType:   req.DonationType,
		PaymentMode:    req.PaymentMode,
		DateOfDonation: req.DateOfDonation,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		StartDateBS:    req.StartDateBS,
		EndDateBS:      req.EndDateBS,
		Notes:          req.Notes,
		CreatedBy:      GetUserEmail(c),
	}

	donation, err := h.donationService.CreateDonation(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Donation recorded successfully", donation)
}

// Get handles retrieving a donation by ID
func (h *DonationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donation ID")
		return
	}

	donation, err := h.donationService.GetDonation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donation retrieved successfully", donation)
}

// Update handles updating a donation
func (h *DonationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donation ID")
		return
	}

	var req request.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateDonationInput{
		ID:             id,
		DonorName:      req.DonorName,
		Amount:         req.Amount,
		DonationType:   req.DonationType,
		PaymentMode:    req.PaymentMode,
		DateOfDonation: req.DateOfDonation,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		StartDateBS:    req.StartDateBS,
		EndDateBS:      req.EndDateBS,
		Notes:          req.Notes,
	}

	donation, err := h.donationService.UpdateDonation(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donation updated successfully", donation)
}

// Delete handles deleting a donation
func (h *DonationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donation ID")
		return
	}

	if err := h.donationService.DeleteDonation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donation deleted successfully", nil)
}

// Export streams all donations matching the filter as an XLSX workbook
func (h *DonationHandler) Export(c *gin.Context) {
	filter, err := filterFromQuery(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	data, err := h.exportService.ExportDonationsXLSX(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "donations-" + time.Now().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
