package model

import "kosan/shared/model"

const (
	TableName  = "kos"
	EntityName = "kos"

	FieldID         = "id"
	FieldName       = "name"
	FieldPrice      = "price"
	FieldStockKamar = "stock_kamar"
	FieldLatitude   = "latitude"
	FieldLongitude  = "longitude"
	FieldAddress    = "address"
)

type Kos struct {
	ID         string  `db:"id"`
	Name       string  `db:"name"`
	Price      int     `db:"price"`
	StockKamar int     `db:"stock_kamar"`
	Latitude   float64 `db:"latitude"`
	Longitude  float64 `db:"longitude"`
	Address    string  `db:"address"`
	model.Metadata
}
