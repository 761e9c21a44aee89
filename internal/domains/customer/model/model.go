package model

import "primecm/shared/model"

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID           = "id"
	FieldFirstName    = "firstname"
	FieldLastName     = "lastname"
	FieldEmail        = "email"
	FieldPhoneNumber  = "phone_number"
	FieldAddress      = "address"
	FieldGender       = "gender"
	FieldReligion     = "religion"
	FieldBusinessName = "business_name"
)

const (
	PhoneNumberTableName  = "customer_phone_numbers"
	PhoneNumberEntityName = "customer_phone_number"

	FieldPhoneNumberID         = "id"
	FieldPhoneNumberCustomerID = "customer_id"
	FieldPhoneNumberNumber     = "number"
)

// Customer is a photographer served by the shop. PhoneNumber is the natural key.
type Customer struct {
	ID           string          `db:"id"`
	FirstName    *string         `db:"firstname"`
	LastName     *string         `db:"lastname"`
	Email        *string         `db:"email"`
	PhoneNumber  string          `db:"phone_number"`
	Address      *string         `db:"address"`
	Gender       *model.Gender   `db:"gender"`
	Religion     *model.Religion `db:"religion"`
	BusinessName *string         `db:"business_name"`
	model.Metadata
}

type PhoneNumber struct {
	ID         string `db:"id"`
	CustomerID string `db:"customer_id"`
	Number     string `db:"number"`
}
