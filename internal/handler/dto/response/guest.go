package response

import (
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/usecase/queries"
)

type GuestResponse struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Phone                string `json:"phone"`
	IdentificationNumber string `json:"identificationNumber"`
	Status               string `json:"status"`
	StatusJustification  string `json:"statusJustification,omitempty"`
}

func FromGuest(g *guest.Guest) *GuestResponse {
	return &GuestResponse{
		ID:                   g.ID(),
		Name:                 g.Name(),
		Email:                g.Email(),
		Phone:                g.Phone(),
		IdentificationNumber: g.IdentificationNumber(),
		Status:               g.Status().String(),
		StatusJustification:  g.StatusJustification(),
	}
}

func FromGuestView(v *queries.GuestView) *GuestResponse {
	return &GuestResponse{
		ID:                   v.ID,
		Name:                 v.Name,
		Email:                v.Email,
		Phone:                v.Phone,
		IdentificationNumber: v.IdentificationNumber,
		Status:               v.Status,
		StatusJustification:  v.StatusJustification,
	}
}
