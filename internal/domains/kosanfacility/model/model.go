package model

import (
	facilityModel "kosan/internal/domains/facility/model"
	"kosan/shared/model"
)

const (
	TableName  = "kosan_facilities"
	EntityName = "kosan_facility"

	FieldID         = "id"
	FieldKosanID    = "kosan_id"
	FieldFacilityID = "facility_id"
)

type KosanFacility struct {
	ID         string `db:"id"`
	KosanID    string `db:"kosan_id"`
	FacilityID string `db:"facility_id"`
	model.Metadata
}

// JoinedFacility is the read model for facilities attached to a kos.
type JoinedFacility struct {
	ID           string `db:"id"`
	KosanID      string `db:"kosan_id"`
	FacilityID   string `db:"facility_id"`
	FacilityName string `db:"facility_name" column:"name" table:"facilities"`
}

func (JoinedFacility) GetJoinQuery() string {
	return "LEFT JOIN " + facilityModel.TableName + " ON " + facilityModel.TableName + ".id = " + TableName + ".facility_id"
}
