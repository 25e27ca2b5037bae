package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Donor represents a donor registered with the organization
type Donor struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	NameNepali *string        `gorm:"size:255" json:"name_nepali,omitempty"`
	Email      *string        `gorm:"size:255" json:"email,omitempty"`
	Phone      *string        `gorm:"size:50" json:"phone,omitempty"`
	Address    *string        `gorm:"type:text" json:"address,omitempty"`
	PANNumber  *string        `gorm:"size:50;column:pan_number" json:"pan_number,omitempty"`
	Photo      *string        `gorm:"size:255" json:"photo,omitempty"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"-"`
	Donations []Donation `gorm:"foreignKey:DonorID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new donor
func (d *Donor) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Donor model
func (Donor) TableName() string {
	return "donors"
}
