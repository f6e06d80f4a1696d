package dto

import (
	"mime/multipart"

	"kosan/internal/domains/imagekosan/model"
	gDto "kosan/shared/dto"
)

type UploadImageRequest struct {
	Image     *multipart.FileHeader `json:"image"                swaggerignore:"true"                 validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type ImageKosanResponse struct {
	ID      string `json:"id"`
	KosanID string `json:"kosanId"`
	URL     string `json:"url"`
	gDto.Metadata
}

func (r *ImageKosanResponse) FromModel(mod model.ImageKosan) {
	r.ID = mod.ID
	r.KosanID = mod.KosanID
	r.URL = mod.Name
	r.Metadata.FromModel(mod.Metadata)
}

type GetImageKosansResponse struct {
	Images []ImageKosanResponse `json:"images"`
}

func (r *GetImageKosansResponse) FromModels(models []model.ImageKosan) {
	r.Images = make([]ImageKosanResponse, len(models))
	for i, mod := range models {
		r.Images[i].FromModel(mod)
	}
}
