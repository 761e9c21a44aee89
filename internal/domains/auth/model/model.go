package model

import "time"

const (
	TableName  = "access_tokens"
	EntityName = "access_token"

	FieldID             = "id"
	FieldAdminID        = "admin_id"
	FieldIssuedAt       = "issued_at"
	FieldExpirationDate = "expiration_date"
)

// AccessToken is the server-side record of a bearer token. A token is live
// only while its row exists and the current time is before ExpirationDate.
type AccessToken struct {
	ID             string    `db:"id"`
	AdminID        string    `db:"admin_id"`
	IssuedAt       time.Time `db:"issued_at"`
	ExpirationDate time.Time `db:"expiration_date"`
}

func (a AccessToken) ExpiredAt(now time.Time) bool {
	return !now.Before(a.ExpirationDate)
}
