package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateDonationRequest represents a donation creation request. Dates are
// Gregorian RFC 3339; the BS fields carry preformatted Bikram Sambat
// strings shown verbatim on the receipt.
type CreateDonationRequest struct {
	DonorID        *uuid.UUID `json:"donor_id"`
	DonorName      string     `json:"donor_name" binding:"required,min=2,max=255"`
	Amount         int64      `json:"amount" binding:"min=0"`
	DonationType   string     `json:"donation_type" binding:"omitempty,max=50"`
	PaymentMode    string     `json:"payment_mode" binding:"omitempty,max=50"`
	DateOfDonation *time.Time `json:"date_of_donation"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	StartDateBS    *string    `json:"start_date_bs" binding:"omitempty,max=50"`
	EndDateBS      *string    `json:"end_date_bs" binding:"omitempty,max=50"`
	Notes          *string    `json:"notes" binding:"omitempty,max=500"`
}

// UpdateDonationRequest represents a donation update request
type UpdateDonationRequest struct {
	DonorName      *string    `json:"donor_name" binding:"omitempty,min=2,max=255"`
	Amount         *int64     `json:"amount" binding:"omitempty,min=0"`
	DonationType   *string    `json:"donation_type" binding:"omitempty,max=50"`
	PaymentMode    *string    `json:"payment_mode" binding:"omitempty,max=50"`
	DateOfDonation *time.Time `json:"date_of_donation"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	StartDateBS    *string    `json:"start_date_bs" binding:"omitempty,max=50"`
	EndDateBS      *string    `json:"end_date_bs" binding:"omitempty,max=50"`
	Notes          *string    `json:"notes" binding:"omitempty,max=500"`
}

// DonationFilterRequest represents donation filter parameters
type DonationFilterRequest struct {
	Search       string `form:"search"`
	DonorID      string `form:"donor_id"`
	DonationType string `form:"donation_type"`
	PaymentMode  string `form:"payment_mode"`
	From         string `form:"from"`
	To           string `form:"to"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}
