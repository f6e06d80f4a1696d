package dto

import (
	"kosan/internal/domains/user/model"
	"kosan/shared"
	gDto "kosan/shared/dto"
	gModel "kosan/shared/model"
	"kosan/shared/timezone"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Email       string `json:"email"       validate:"required,email,max=255"`
	Password    string `json:"password"    validate:"required,min=6,max=72"`
	Role        string `json:"role"        validate:"required,oneof=user admin"`
	PhoneNumber string `json:"phonenumber" validate:"required,max=32"`
}

func (r *RegisterRequest) ToModel(hashedPassword string) model.User {
	return model.User{
		ID:          uuid.NewString(),
		Name:        r.Name,
		Email:       r.Email,
		Password:    hashedPassword,
		Role:        r.Role,
		PhoneNumber: r.PhoneNumber,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	Role        string `json:"role"`
}

// UpdateProfileRequest replaces the whole profile; partial updates are not
// supported, the password is always re-hashed.
type UpdateProfileRequest struct {
	Name        string `db:"name"        json:"name"        validate:"required,max=255"`
	Password    string `json:"password"                     validate:"required,min=6,max=72"`
	PhoneNumber string `db:"phonenumber" json:"phonenumber" validate:"required,max=32"`
}

type ProfileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	PhoneNumber string `json:"phonenumber"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Email = mod.Email
	r.Role = mod.Role
	r.PhoneNumber = mod.PhoneNumber
	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []ProfileResponse `json:"users"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]ProfileResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
