package dto

import (
	imageModel "kosan/internal/domains/imagekosan/model"
	kamarModel "kosan/internal/domains/kamar/model"
	"kosan/internal/domains/kos/model"
	kosanFacilityModel "kosan/internal/domains/kosanfacility/model"
	"kosan/shared"
	gDto "kosan/shared/dto"
	"kosan/shared/failure"
	gModel "kosan/shared/model"
	"kosan/shared/timezone"

	"github.com/google/uuid"
)

type CreateKosRequest struct {
	Name       string  `json:"name"       validate:"required,max=255"`
	Price      int     `json:"price"      validate:"required,gte=0"`
	StockKamar int     `json:"stockKamar" validate:"required,gte=1"`
	Latitude   float64 `json:"latitude"   validate:"required,latitude"`
	Longitude  float64 `json:"longitude"  validate:"required,longitude"`
	Address    string  `json:"address"    validate:"required,max=255"`
	Facility   any     `json:"facility"   validate:"omitempty"`
}

func (c *CreateKosRequest) ToModel() model.Kos {
	return model.Kos{
		ID:         uuid.NewString(),
		Name:       c.Name,
		Price:      c.Price,
		StockKamar: c.StockKamar,
		Latitude:   c.Latitude,
		Longitude:  c.Longitude,
		Address:    c.Address,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			UpdatedAt: timezone.Now(),
		},
	}
}

// FacilityIDs unpacks the facility field, which must be a JSON array of
// facility ids when present.
func (c *CreateKosRequest) FacilityIDs() ([]string, error) {
	if c.Facility == nil {
		return nil, nil
	}

	items, ok := c.Facility.([]any)
	if !ok {
		return nil, failure.BadRequestFromString("Facility must be an array") //nolint:wrapcheck
	}

	ids := make([]string, 0, len(items))

	for _, item := range items {
		id, ok := item.(string)
		if !ok {
			return nil, failure.BadRequestFromString("Facility must be an array") //nolint:wrapcheck
		}

		ids = append(ids, id)
	}

	return ids, nil
}

// ToJoinModels builds the join rows attaching facilities to a kos. The ids
// are inserted as supplied, without a lookup against the facilities table.
func ToJoinModels(kosanID string, facilityIDs []string) []kosanFacilityModel.KosanFacility {
	joins := make([]kosanFacilityModel.KosanFacility, len(facilityIDs))
	for i, facilityID := range facilityIDs {
		joins[i] = kosanFacilityModel.KosanFacility{
			ID:         uuid.NewString(),
			KosanID:    kosanID,
			FacilityID: facilityID,
			Metadata: gModel.Metadata{
				CreatedAt: timezone.Now(),
				UpdatedAt: timezone.Now(),
			},
		}
	}

	return joins
}

type UpdateKosRequest struct {
	Name       string  `db:"name"        json:"name"       validate:"required,max=255"`
	Price      int     `db:"price"       json:"price"      validate:"required,gte=0"`
	StockKamar int     `db:"stock_kamar" json:"stockKamar" validate:"required,gte=1"`
	Latitude   float64 `db:"latitude"    json:"latitude"   validate:"required,latitude"`
	Longitude  float64 `db:"longitude"   json:"longitude"  validate:"required,longitude"`
	Address    string  `db:"address"     json:"address"    validate:"required,max=255"`
}

type FacilityItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type KamarItem struct {
	ID      string `json:"id"`
	NoKamar string `json:"noKamar"`
	Status  string `json:"status"`
}

func (k *KamarItem) FromModel(mod kamarModel.Kamar) {
	k.ID = mod.ID
	k.NoKamar = mod.NoKamar
	k.Status = mod.Status
}

type ImageItem struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (i *ImageItem) FromModel(mod imageModel.ImageKosan) {
	i.ID = mod.ID
	i.URL = mod.Name
}

type KosResponse struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Price          int            `json:"price"`
	StockKamar     int            `json:"stockKamar"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	Address        string         `json:"address"`
	AvailableRooms int            `json:"availableRooms"`
	Facilities     []FacilityItem `json:"facilities"`
	Images         []ImageItem    `json:"images,omitempty"`
	Kamars         []KamarItem    `json:"kamars,omitempty"`
	gDto.Metadata
}

func (r *KosResponse) FromModel(mod model.Kos) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Price = mod.Price
	r.StockKamar = mod.StockKamar
	r.Latitude = mod.Latitude
	r.Longitude = mod.Longitude
	r.Address = mod.Address
	r.Facilities = []FacilityItem{}
	r.Metadata.FromModel(mod.Metadata)
}

func (r *KosResponse) AttachFacilities(joins []kosanFacilityModel.JoinedFacility) {
	for _, join := range joins {
		if join.KosanID != r.ID {
			continue
		}

		r.Facilities = append(r.Facilities, FacilityItem{
			ID:   join.FacilityID,
			Name: join.FacilityName,
		})
	}
}

func (r *KosResponse) AttachKamars(models []kamarModel.Kamar) {
	r.Kamars = make([]KamarItem, len(models))
	for i, mod := range models {
		r.Kamars[i].FromModel(mod)
	}
}

func (r *KosResponse) AttachImages(models []imageModel.ImageKosan) {
	r.Images = make([]ImageItem, len(models))
	for i, mod := range models {
		r.Images[i].FromModel(mod)
	}
}

type GetKosListResponse struct {
	Kos       []KosResponse `json:"kos"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetKosListResponse) FromModels(models []model.Kos, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Kos = make([]KosResponse, len(models))
	for i, mod := range models {
		r.Kos[i].FromModel(mod)
	}
}
