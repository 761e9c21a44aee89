package dto

import (
	"net/http"
	"primecm/internal/domains/customer/model"
	gDto "primecm/shared/dto"
	gModel "primecm/shared/model"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FirstName    *string            `json:"firstname"     validate:"omitempty,max=50"`
	LastName     *string            `json:"lastname"      validate:"omitempty,max=50"`
	Email        *string            `json:"email"         validate:"omitempty,email,max=150"`
	PhoneNumber  string             `json:"phone_number"  validate:"required,phone"`
	OtherNumber  []gDto.OtherNumber `json:"other_number"  validate:"omitempty,dive"`
	Address      *string            `json:"address"       validate:"omitempty"`
	Gender       *gModel.Gender     `json:"gender"        validate:"omitempty,oneof=male female"`
	Religion     *gModel.Religion   `json:"religion"      validate:"omitempty,oneof=christian muslim"`
	BusinessName *string            `json:"business_name" validate:"omitempty,max=150"`
}

func (r *CreateCustomerRequest) ToModel(actor string) (model.Customer, []model.PhoneNumber) {
	customer := model.Customer{
		ID:           uuid.NewString(),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		PhoneNumber:  r.PhoneNumber,
		Address:      r.Address,
		Gender:       r.Gender,
		Religion:     r.Religion,
		BusinessName: r.BusinessName,
		Metadata:     gModel.NewMetadata(actor),
	}

	return customer, ToPhoneNumbers(customer.ID, r.OtherNumber)
}

// UpdateCustomerRequest changes the customer registered under PhoneNumber.
// Only supplied fields are written; a non-nil OtherNumber replaces the
// customer's secondary numbers, an empty list removes them all.
type UpdateCustomerRequest struct {
	PhoneNumber    string              `db:"-"             json:"phone_number"     validate:"required,phone"`
	NewPhoneNumber *string             `db:"phone_number"  json:"new_phone_number" validate:"omitempty,phone"`
	FirstName      *string             `db:"firstname"     json:"firstname"        validate:"omitempty,max=50"`
	LastName       *string             `db:"lastname"      json:"lastname"         validate:"omitempty,max=50"`
	Email          *string             `db:"email"         json:"email"            validate:"omitempty,email,max=150"`
	Address        *string             `db:"address"       json:"address"          validate:"omitempty"`
	Gender         *gModel.Gender      `db:"gender"        json:"gender"           validate:"omitempty,oneof=male female"`
	Religion       *gModel.Religion    `db:"religion"      json:"religion"         validate:"omitempty,oneof=christian muslim"`
	BusinessName   *string             `db:"business_name" json:"business_name"    validate:"omitempty,max=150"`
	OtherNumber    *[]gDto.OtherNumber `db:"-"             json:"other_number"     validate:"omitempty,dive"`
}

// SearchCustomerRequest holds optional exact-match filters; unset fields are ignored.
type SearchCustomerRequest struct {
	FirstName    *string          `db:"firstname"     validate:"omitempty"`
	LastName     *string          `db:"lastname"      validate:"omitempty"`
	Email        *string          `db:"email"         validate:"omitempty"`
	PhoneNumber  *string          `db:"phone_number"  validate:"omitempty"`
	Address      *string          `db:"address"       validate:"omitempty"`
	Gender       *gModel.Gender   `db:"gender"        validate:"omitempty,oneof=male female"`
	Religion     *gModel.Religion `db:"religion"      validate:"omitempty,oneof=christian muslim"`
	BusinessName *string          `db:"business_name" validate:"omitempty"`
}

// FromRequest reads the filters from the query string. Parameters that are
// absent stay nil.
func (s *SearchCustomerRequest) FromRequest(r *http.Request) {
	query := r.URL.Query()

	get := func(key string) *string {
		if !query.Has(key) {
			return nil
		}

		value := query.Get(key)

		return &value
	}

	s.FirstName = get(model.FieldFirstName)
	s.LastName = get(model.FieldLastName)
	s.Email = get(model.FieldEmail)
	s.PhoneNumber = get(model.FieldPhoneNumber)
	s.Address = get(model.FieldAddress)
	s.BusinessName = get(model.FieldBusinessName)

	if gender := get(model.FieldGender); gender != nil {
		value := gModel.Gender(*gender)
		s.Gender = &value
	}

	if religion := get(model.FieldReligion); religion != nil {
		value := gModel.Religion(*religion)
		s.Religion = &value
	}
}

// CustomerIdentity identifies a customer by exact match on every supplied field.
type CustomerIdentity struct {
	FirstName    *string          `db:"firstname"     json:"firstname"     validate:"omitempty,max=50"`
	LastName     *string          `db:"lastname"      json:"lastname"      validate:"omitempty,max=50"`
	Email        *string          `db:"email"         json:"email"         validate:"omitempty,max=150"`
	PhoneNumber  string           `db:"phone_number"  json:"phone_number"  validate:"required"`
	Address      *string          `db:"address"       json:"address"       validate:"omitempty"`
	Gender       *gModel.Gender   `db:"gender"        json:"gender"        validate:"omitempty,oneof=male female"`
	Religion     *gModel.Religion `db:"religion"      json:"religion"      validate:"omitempty,oneof=christian muslim"`
	BusinessName *string          `db:"business_name" json:"business_name" validate:"omitempty,max=150"`
}

type CustomerResponse struct {
	ID           string             `json:"id"`
	FirstName    *string            `json:"firstname"`
	LastName     *string            `json:"lastname"`
	Email        *string            `json:"email"`
	PhoneNumber  string             `json:"phone_number"`
	OtherNumber  []gDto.OtherNumber `json:"other_number"`
	Address      *string            `json:"address"`
	Gender       *gModel.Gender     `json:"gender"`
	Religion     *gModel.Religion   `json:"religion"`
	BusinessName *string            `json:"business_name"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(customer model.Customer, numbers []model.PhoneNumber) {
	r.ID = customer.ID
	r.FirstName = customer.FirstName
	r.LastName = customer.LastName
	r.Email = customer.Email
	r.PhoneNumber = customer.PhoneNumber
	r.Address = customer.Address
	r.Gender = customer.Gender
	r.Religion = customer.Religion
	r.BusinessName = customer.BusinessName
	r.Metadata.FromModel(customer.Metadata)

	others := make([]string, 0, len(numbers))
	for _, number := range numbers {
		if number.CustomerID == customer.ID {
			others = append(others, number.Number)
		}
	}

	r.OtherNumber = gDto.OtherNumbersFrom(others)
}

func FromModels(customers []model.Customer, numbers []model.PhoneNumber) []CustomerResponse {
	res := make([]CustomerResponse, len(customers))

	for i, customer := range customers {
		res[i].FromModel(customer, numbers)
	}

	return res
}

func ToPhoneNumbers(customerID string, others []gDto.OtherNumber) []model.PhoneNumber {
	numbers := make([]model.PhoneNumber, len(others))

	for i, other := range others {
		numbers[i] = model.PhoneNumber{
			ID:         uuid.NewString(),
			CustomerID: customerID,
			Number:     other.Number,
		}
	}

	return numbers
}
