package request

import "time"

// GenerateReceiptRequest is the request body for ad-hoc receipt
// generation without a stored donation.
type GenerateReceiptRequest struct {
	ReceiptNumber  string     `json:"receipt_number" binding:"required,max=50"`
	DonorName      string     `json:"donor_name" binding:"required,min=2,max=255"`
	DonorID        string     `json:"donor_id"`
	Amount         int64      `json:"amount" binding:"min=0"`
	DonationType   string     `json:"donation_type"`
	PaymentMode    string     `json:"payment_mode"`
	DateOfDonation *time.Time `json:"date_of_donation"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	StartDateBS    string     `json:"start_date_bs"`
	EndDateBS      string     `json:"end_date_bs"`
	Notes          string     `json:"notes" binding:"omitempty,max=500"`
	CreatedBy      string     `json:"created_by"`
}
