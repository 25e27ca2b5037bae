package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashramseva/donation-api/internal/domain/enum"
)

// Donation represents a single donation and the receipt issued for it.
// Amounts are whole rupees; the organization does not accept paisa.
type Donation struct {
	ID             uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNumber  string            `gorm:"size:50;not null;uniqueIndex" json:"receipt_number"`
	DonorID        *uuid.UUID        `gorm:"type:uuid;index" json:"donor_id,omitempty"`
	UserID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	DonorName      string            `gorm:"size:255;not null" json:"donor_name"`
	Amount         int64             `gorm:"not null" json:"amount"`
	DonationType   enum.DonationType `gorm:"size:50;not null;index" json:"donation_type"`
	PaymentMode    enum.PaymentMode  `gorm:"size:50;not null" json:"payment_mode"`
	DateOfDonation *time.Time        `json:"date_of_donation,omitempty"`
	StartDate      *time.Time        `json:"start_date,omitempty"`
	EndDate        *time.Time        `json:"end_date,omitempty"`
	StartDateBS    *string           `gorm:"size:50;column:start_date_bs" json:"start_date_bs,omitempty"`
	EndDateBS      *string           `gorm:"size:50;column:end_date_bs" json:"end_date_bs,omitempty"`
	Notes          *string           `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy      string            `gorm:"size:255;not null;default:'System'" json:"created_by"`
	EmailedAt      *time.Time        `json:"emailed_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Donor *Donor `gorm:"foreignKey:DonorID" json:"donor,omitempty"`
	User  User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new donation
func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Donation model
func (Donation) TableName() string {
	return "donations"
}

// IsPeriodBased reports whether this donation covers a date range
// rather than a single day.
func (d *Donation) IsPeriodBased() bool {
	return d.DonationType.IsPeriodBased()
}
