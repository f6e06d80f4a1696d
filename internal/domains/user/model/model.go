package model

import "kosan/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID          = "id"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldRole        = "role"
	FieldPhoneNumber = "phonenumber"
)

type User struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Email       string `db:"email"`
	Password    string `db:"password"`
	Role        string `db:"role"`
	PhoneNumber string `db:"phonenumber"`
	model.Metadata
}
