package dto

import (
	"kosan/internal/domains/facility/model"
	"kosan/shared"
	gDto "kosan/shared/dto"
	gModel "kosan/shared/model"
	"kosan/shared/timezone"

	"github.com/google/uuid"
)

type CreateFacilityRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (c *CreateFacilityRequest) ToModel() model.Facility {
	return model.Facility{
		ID:   uuid.NewString(),
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type UpdateFacilityRequest struct {
	Name string `db:"name" json:"name" validate:"required,max=255"`
}

type FacilityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(mod model.Facility) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Metadata.FromModel(mod.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
