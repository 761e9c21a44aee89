package validator_test

import (
	"net/http"
	"primecm/shared/failure"
	"primecm/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type customerPayload struct {
	FirstName   string  `json:"firstname"`
	Email       *string `json:"email"        validate:"omitempty,email"`
	PhoneNumber string  `json:"phone_number" validate:"required,phone"`
	Gender      *string `json:"gender"       validate:"omitempty,oneof=male female"`
	Copies      int     `json:"copies"       validate:"gt=0"`
}

func strPtr(s string) *string {
	return &s
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    customerPayload
		message string
	}{
		{
			name: "valid payload",
			data: customerPayload{PhoneNumber: "0800000002", Copies: 1},
		},
		{
			name:    "missing phone number",
			data:    customerPayload{Copies: 1},
			message: "PhoneNumber is required",
		},
		{
			name:    "phone number with letters",
			data:    customerPayload{PhoneNumber: "0800-CALL-ME", Copies: 1},
			message: "PhoneNumber must be a phone number of 7 to 15 digits",
		},
		{
			name: "international phone number",
			data: customerPayload{PhoneNumber: "+2348000000002", Copies: 1},
		},
		{
			name:    "invalid email",
			data:    customerPayload{PhoneNumber: "0800000002", Email: strPtr("jane"), Copies: 1},
			message: "Email must be a valid email address",
		},
		{
			name:    "gender outside enumeration",
			data:    customerPayload{PhoneNumber: "0800000002", Gender: strPtr("other"), Copies: 1},
			message: "Gender must be one of male female",
		},
		{
			name:    "zero copies",
			data:    customerPayload{PhoneNumber: "0800000002"},
			message: "Copies must be greater than 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.message == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.message)
			assert.Equal(t, http.StatusUnprocessableEntity, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name: "valid body",
			body: `{"firstname":"Jane","phone_number":"0800000002","copies":2}`,
		},
		{
			name:     "rule violation is unprocessable",
			body:     `{"firstname":"Jane","copies":2}`,
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name:     "malformed body is bad request",
			body:     `{"firstname":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "wrong type is bad request",
			body:     `{"phone_number":"0800000002","copies":"two"}`,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data customerPayload

			err := validator.Validate(strings.NewReader(tt.body), &data)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("0800000001", "phone"))
	assert.Error(t, validator.ValidateVar("12", "phone"))
	assert.NoError(t, validator.ValidateVar("luster", "oneof=luster glossy canvas"))
	assert.Error(t, validator.ValidateVar("matte", "oneof=luster glossy canvas"))
}
