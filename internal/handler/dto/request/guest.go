package request

type GuestProfileRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required"`
	Phone                string `json:"phone"`
	IdentificationNumber string `json:"identification_number"`
}

type DeactivateGuestRequest struct {
	Justification string `json:"justification"`
}
