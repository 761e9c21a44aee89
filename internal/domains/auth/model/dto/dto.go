package dto

import (
	"primecm/internal/domains/admin/model"
	authModel "primecm/internal/domains/auth/model"
	"primecm/shared/constant"
	"time"
)

// LoginRequest is the OAuth2 password-form body of POST /v1/token.
// Username carries the admin's phone number.
type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

func (l *LoginResponse) FromAccessToken(token AccessToken) {
	l.AccessToken = token.Token
	l.TokenType = constant.TokenTypeBearer
	l.ExpiresIn = token.ExpiresIn
}

// AccessToken is a freshly minted bearer string together with its stored record.
type AccessToken struct {
	Token     string
	ID        string
	AdminID   string
	ExpiresAt time.Time
	ExpiresIn int64
}

func (a *AccessToken) FromModel(token authModel.AccessToken, signed string) {
	a.Token = signed
	a.ID = token.ID
	a.AdminID = token.AdminID
	a.ExpiresAt = token.ExpirationDate
	a.ExpiresIn = int64(token.ExpirationDate.Sub(token.IssuedAt).Seconds())
}

// Identity is the caller resolved from a live bearer token.
type Identity struct {
	AdminID     string
	PhoneNumber string
	Level       model.Level
	TokenID     string
}

func (i *Identity) FromModel(admin model.Admin, tokenID string) {
	i.AdminID = admin.ID
	i.PhoneNumber = admin.PhoneNumber
	i.Level = admin.Level
	i.TokenID = tokenID
}
