package model

import "primecm/shared/model"

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID             = "id"
	FieldFirstName      = "firstname"
	FieldLastName       = "lastname"
	FieldEmail          = "email"
	FieldPhoneNumber    = "phone_number"
	FieldAddress        = "address"
	FieldGender         = "gender"
	FieldReligion       = "religion"
	FieldLevel          = "level"
	FieldHashedPassword = "hashed_password"
)

const (
	PhoneNumberTableName  = "admin_phone_numbers"
	PhoneNumberEntityName = "admin_phone_number"

	FieldPhoneNumberID      = "id"
	FieldPhoneNumberAdminID = "admin_id"
	FieldPhoneNumberNumber  = "number"
)

// Level is an admin's rights tier. Only LevelZero may create other admins.
type Level int

const (
	LevelZero Level = 0
	LevelOne  Level = 1
)

type Admin struct {
	ID             string          `db:"id"`
	FirstName      *string         `db:"firstname"`
	LastName       *string         `db:"lastname"`
	Email          *string         `db:"email"`
	PhoneNumber    string          `db:"phone_number"`
	Address        *string         `db:"address"`
	Gender         *model.Gender   `db:"gender"`
	Religion       *model.Religion `db:"religion"`
	Level          Level           `db:"level"`
	HashedPassword string          `db:"hashed_password"`
	model.Metadata
}

// PhoneNumber is one of an admin's secondary contact numbers.
type PhoneNumber struct {
	ID      string `db:"id"`
	AdminID string `db:"admin_id"`
	Number  string `db:"number"`
}
