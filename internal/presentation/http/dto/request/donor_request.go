package request

// CreateDonorRequest represents a donor creation request
type CreateDonorRequest struct {
	Name       string  `json:"name" binding:"required,min=2,max=255"`
	NameNepali *string `json:"name_nepali" binding:"omitempty,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address"`
	PANNumber  *string `json:"pan_number" binding:"omitempty,max=50"`
	Notes      *string `json:"notes"`
}

// UpdateDonorRequest represents a donor update request
type UpdateDonorRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=255"`
	NameNepali *string `json:"name_nepali" binding:"omitempty,max=255"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Address    *string `json:"address"`
	PANNumber  *string `json:"pan_number" binding:"omitempty,max=50"`
	Notes      *string `json:"notes"`
}
