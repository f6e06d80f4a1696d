package model

import "kosan/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID   = "id"
	FieldName = "name"
)

type Facility struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
