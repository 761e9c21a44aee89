package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	adminModel "primecm/internal/domains/admin/model"
	"primecm/internal/domains/auth/model"
	"primecm/internal/domains/auth/model/dto"
)

func TestAccessToken_FromModel(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	var token dto.AccessToken
	token.FromModel(model.AccessToken{
		ID:             "token-1",
		AdminID:        "admin-1",
		IssuedAt:       issued,
		ExpirationDate: issued.Add(time.Hour),
	}, "signed.jwt.value")

	assert.Equal(t, "signed.jwt.value", token.Token)
	assert.Equal(t, "token-1", token.ID)
	assert.Equal(t, int64(3600), token.ExpiresIn)
	assert.Equal(t, issued.Add(time.Hour), token.ExpiresAt)
}

func TestLoginResponse_FromAccessToken(t *testing.T) {
	var res dto.LoginResponse
	res.FromAccessToken(dto.AccessToken{Token: "signed.jwt.value", ExpiresIn: 3600})

	assert.Equal(t, "signed.jwt.value", res.AccessToken)
	assert.Equal(t, "bearer", res.TokenType)
	assert.Equal(t, int64(3600), res.ExpiresIn)
}

func TestIdentity_FromModel(t *testing.T) {
	var identity dto.Identity
	identity.FromModel(adminModel.Admin{ID: "admin-1", PhoneNumber: "08012345678", Level: adminModel.LevelOne}, "token-1")

	assert.Equal(t, dto.Identity{AdminID: "admin-1", PhoneNumber: "08012345678", Level: adminModel.LevelOne, TokenID: "token-1"}, identity)
}

func TestAccessToken_ExpiredAt(t *testing.T) {
	expiry := time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)
	token := model.AccessToken{ExpirationDate: expiry}

	assert.False(t, token.ExpiredAt(expiry.Add(-time.Second)))
	assert.True(t, token.ExpiredAt(expiry))
	assert.True(t, token.ExpiredAt(expiry.Add(time.Second)))
}
