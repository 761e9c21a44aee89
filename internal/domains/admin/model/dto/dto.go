package dto

import (
	"primecm/internal/domains/admin/model"
	gDto "primecm/shared/dto"
	gModel "primecm/shared/model"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FirstName   *string            `json:"firstname"    validate:"omitempty,max=50"`
	LastName    *string            `json:"lastname"     validate:"omitempty,max=50"`
	Email       *string            `json:"email"        validate:"omitempty,email,max=150"`
	PhoneNumber string             `json:"phone_number" validate:"required,phone"`
	OtherNumber []gDto.OtherNumber `json:"other_number" validate:"omitempty,dive"`
	Address     *string            `json:"address"      validate:"omitempty"`
	Gender      *gModel.Gender     `json:"gender"       validate:"omitempty,oneof=male female"`
	Religion    *gModel.Religion   `json:"religion"     validate:"omitempty,oneof=christian muslim"`
	Level       *model.Level       `json:"level"        validate:"required,oneof=0 1"`
	Password    string             `json:"password"     validate:"required,max=72"`
}

// ToModel builds the admin row and its secondary numbers. The password must already be hashed.
func (r *RegisterRequest) ToModel(actor, hashedPassword string) (model.Admin, []model.PhoneNumber) {
	admin := model.Admin{
		ID:             uuid.NewString(),
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		PhoneNumber:    r.PhoneNumber,
		Address:        r.Address,
		Gender:         r.Gender,
		Religion:       r.Religion,
		HashedPassword: hashedPassword,
		Metadata:       gModel.NewMetadata(actor),
	}

	if r.Level != nil {
		admin.Level = *r.Level
	}

	numbers := make([]model.PhoneNumber, len(r.OtherNumber))
	for i, other := range r.OtherNumber {
		numbers[i] = model.PhoneNumber{
			ID:      uuid.NewString(),
			AdminID: admin.ID,
			Number:  other.Number,
		}
	}

	return admin, numbers
}

// AdminResponse is the public view of an admin; the password hash is never exposed.
type AdminResponse struct {
	ID          string             `json:"id"`
	FirstName   *string            `json:"firstname"`
	LastName    *string            `json:"lastname"`
	Email       *string            `json:"email"`
	PhoneNumber string             `json:"phone_number"`
	OtherNumber []gDto.OtherNumber `json:"other_number"`
	Address     *string            `json:"address"`
	Gender      *gModel.Gender     `json:"gender"`
	Religion    *gModel.Religion   `json:"religion"`
	Level       model.Level        `json:"level"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(admin model.Admin, numbers []model.PhoneNumber) {
	r.ID = admin.ID
	r.FirstName = admin.FirstName
	r.LastName = admin.LastName
	r.Email = admin.Email
	r.PhoneNumber = admin.PhoneNumber
	r.Address = admin.Address
	r.Gender = admin.Gender
	r.Religion = admin.Religion
	r.Level = admin.Level
	r.Metadata.FromModel(admin.Metadata)

	others := make([]string, 0, len(numbers))
	for _, number := range numbers {
		if number.AdminID == admin.ID {
			others = append(others, number.Number)
		}
	}

	r.OtherNumber = gDto.OtherNumbersFrom(others)
}

// FromModels renders admins with the numbers that belong to each of them.
func FromModels(admins []model.Admin, numbers []model.PhoneNumber) []AdminResponse {
	res := make([]AdminResponse, len(admins))

	for i, admin := range admins {
		res[i].FromModel(admin, numbers)
	}

	return res
}
