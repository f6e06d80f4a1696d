package dto

import (
	"time"

	"kosan/internal/domains/kamar/model"
	"kosan/shared"
)

type RentRequest struct {
	KosanID   string `json:"kosanId"   validate:"required"`
	Duration  *int   `json:"duration"  validate:"omitempty,gte=1"`
	StartDate string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
}

type RentKosInfo struct {
	Name    string `json:"name"`
	Price   int    `json:"price"`
	Address string `json:"address"`
}

type RentUserInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type RentResponse struct {
	ID        string        `json:"id"`
	KosanID   string        `json:"kosanId"`
	NoKamar   string        `json:"noKamar"`
	Status    string        `json:"status"`
	Duration  *int          `json:"duration,omitempty"`
	StartDate *time.Time    `json:"startDate,omitempty"`
	EndDate   *time.Time    `json:"endDate,omitempty"`
	Kos       RentKosInfo   `json:"kos"`
	User      *RentUserInfo `json:"user,omitempty"`
}

func (r *RentResponse) FromModel(mod model.RentView) {
	r.ID = mod.ID
	r.KosanID = mod.KosanID
	r.NoKamar = mod.NoKamar
	r.Status = mod.Status
	r.Duration = mod.Duration
	r.StartDate = mod.StartDate
	r.EndDate = mod.EndDate
	r.Kos = RentKosInfo{
		Name:    mod.KosName,
		Price:   mod.KosPrice,
		Address: mod.KosAddress,
	}

	if mod.UserName != nil && mod.UserEmail != nil {
		r.User = &RentUserInfo{
			Name:  *mod.UserName,
			Email: *mod.UserEmail,
		}
	}
}

type GetRentsResponse struct {
	Rents     []RentResponse `json:"rents"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRentsResponse) FromModels(models []model.RentView, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rents = make([]RentResponse, len(models))
	for i, mod := range models {
		r.Rents[i].FromModel(mod)
	}
}

type UpdateRentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked"`
}

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Event   string  `json:"event"`
	KamarID string  `json:"kamar_id"`
	KosanID string  `json:"kosan_id"`
	UserID  *string `json:"user_id"`
	Status  string  `json:"status"`
}
