package model

import (
	"time"

	kosModel "kosan/internal/domains/kos/model"
	userModel "kosan/internal/domains/user/model"
	"kosan/shared/model"
)

const (
	TableName  = "kamars"
	EntityName = "kamar"

	FieldID        = "id"
	FieldKosanID   = "kosan_id"
	FieldUserID    = "user_id"
	FieldNoKamar   = "no_kamar"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

type Kamar struct {
	ID        string     `db:"id"`
	KosanID   string     `db:"kosan_id"`
	UserID    *string    `db:"user_id"`
	NoKamar   string     `db:"no_kamar"`
	Status    string     `db:"status"`
	Duration  *int       `db:"duration"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	model.Metadata
}

// RentView is the read model for a rented kamar joined with its kos and
// tenant. Tenant columns are nullable because available kamars have no user.
type RentView struct {
	ID         string     `db:"id"`
	KosanID    string     `db:"kosan_id"`
	UserID     *string    `db:"user_id"`
	NoKamar    string     `db:"no_kamar"`
	Status     string     `db:"status"`
	Duration   *int       `db:"duration"`
	StartDate  *time.Time `db:"start_date"`
	EndDate    *time.Time `db:"end_date"`
	KosName    string     `db:"kos_name"    column:"name"    table:"kos"`
	KosPrice   int        `db:"kos_price"   column:"price"   table:"kos"`
	KosAddress string     `db:"kos_address" column:"address" table:"kos"`
	UserName   *string    `db:"user_name"   column:"name"    table:"users"`
	UserEmail  *string    `db:"user_email"  column:"email"   table:"users"`
}

func (RentView) GetJoinQuery() string {
	return "LEFT JOIN " + kosModel.TableName + " ON " + kosModel.TableName + ".id = " + TableName + ".kosan_id" +
		" LEFT JOIN " + userModel.TableName + " ON " + userModel.TableName + ".id = " + TableName + ".user_id"
}
