package model

import "kosan/shared/model"

const (
	TableName  = "image_kosans"
	EntityName = "image_kosan"

	FieldID      = "id"
	FieldKosanID = "kosan_id"
	FieldName    = "name"
)

// ImageKosan stores the object URL of an uploaded kos image.
type ImageKosan struct {
	ID      string `db:"id"`
	KosanID string `db:"kosan_id"`
	Name    string `db:"name"`
	model.Metadata
}
