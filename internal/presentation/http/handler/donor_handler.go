package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ashramseva/donation-api/internal/application/service"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/request"
	"github.com/ashramseva/donation-api/internal/presentation/http/dto/response"
	"github.com/ashramseva/donation-api/pkg/pagination"
)

// DonorHandler handles donor-related HTTP requests
type DonorHandler struct {
	donorService *service.DonorService
}

// NewDonorHandler creates a new donor handler
func NewDonorHandler(donorService *service.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

// List handles listing donors (supports both page-based and cursor-based pagination)
func (h *DonorHandler) List(c *gin.Context) {
	search := c.Query("search")

	// Check if cursor-based pagination is requested
	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, search)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.donorService.ListDonors(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Donors retrieved successfully", result)
}

// listWithCursor handles listing donors with cursor-based pagination
func (h *DonorHandler) listWithCursor(c *gin.Context, search string) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
	cursor := c.Query("cursor")
	direction := c.DefaultQuery("direction", "next")

	params := &pagination.CursorParams{
		Cursor:    cursor,
		Direction: pagination.CursorDirection(direction),
		Limit:     limit,
	}

	result, err := h.donorService.ListDonorsWithCursor(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donors retrieved successfully", result)
}

// Create handles creating a donor
func (h *DonorHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.CreateDonorInput{
		UserID:     *userID,
		Name:       req.Name,
		NameNepali: req.NameNepali,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		PANNumber:  req.PANNumber,
		Notes:      req.Notes,
	}

	donor, err := h.donorService.CreateDonor(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Donor created successfully", donor)
}

// Get handles retrieving a donor by ID
func (h *DonorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donor ID")
		return
	}

	donor, err := h.donorService.GetDonor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donor retrieved successfully", donor)
}

// Update handles updating a donor
func (h *DonorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donor ID")
		return
	}

	var req request.UpdateDonorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	input := &service.UpdateDonorInput{
		ID:         id,
		Name:       req.Name,
		NameNepali: req.NameNepali,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		PANNumber:  req.PANNumber,
		Notes:      req.Notes,
	}

	donor, err := h.donorService.UpdateDonor(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donor updated successfully", donor)
}

// Delete handles deleting a donor
func (h *DonorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid donor ID")
		return
	}

	if err := h.donorService.DeleteDonor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Donor deleted successfully", nil)
}
