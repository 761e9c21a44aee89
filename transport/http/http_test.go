package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"primecm/config"
	"primecm/infras/otel/mocks"
	adminModel "primecm/internal/domains/admin/model"
	authMocks "primecm/internal/domains/auth/mocks"
	authDto "primecm/internal/domains/auth/model/dto"
	bookingMocks "primecm/internal/domains/booking/mocks"
	bookingDto "primecm/internal/domains/booking/model/dto"
	"primecm/internal/handlers/admin"
	"primecm/internal/handlers/auth"
	"primecm/internal/handlers/booking"
	"primecm/internal/handlers/customer"
	"primecm/internal/handlers/home"
	"primecm/permissions"
	"primecm/shared/failure"
	transport "primecm/transport/http"
	"primecm/transport/http/middleware"
	"primecm/transport/http/router"
)

type fixture struct {
	auth    *authMocks.MockAuth
	booking *bookingMocks.MockBookingService
	server  *transport.HTTP
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	otel := mocks.NewOtel()

	f := fixture{
		auth:    authMocks.NewMockAuth(ctrl),
		booking: bookingMocks.NewMockBookingService(ctrl),
	}

	handlers := router.DomainHandlers{
		Home:     home.New(),
		Auth:     auth.New(f.auth, otel),
		Admin:    admin.New(nil, otel),
		Customer: customer.New(nil, otel),
		Booking:  booking.New(f.booking, otel),
	}

	r := router.New(
		handlers,
		middleware.NewAppMiddleware(otel, cfg),
		middleware.NewAuthRoleMiddleware(f.auth, otel, permissions.Get()),
		cfg,
	)

	f.server = transport.New(cfg, r, otel)

	return f
}

func (f fixture) do(method, target, contentType, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.server.ServeHTTP(rec, req)

	return rec
}

func TestHTTP_PublicRoutes(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Welcome to Prime CM"}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/health", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_Token(t *testing.T) {
	form := url.Values{"username": {"0800000001"}, "password": {"secret"}}

	t.Run("issues a token", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().
			Login(gomock.Any(), authDto.LoginRequest{Username: "0800000001", Password: "secret"}).
			Return(authDto.LoginResponse{AccessToken: "signed", TokenType: "bearer", ExpiresIn: 3600}, nil)

		rec := f.do(http.MethodPost, "/v1/token", "application/x-www-form-urlencoded", form.Encode(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"access_token":"signed","token_type":"bearer","expires_in":3600}`, rec.Body.String())
	})

	t.Run("wrong credentials", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(authDto.LoginResponse{}, failure.InvalidCredentials)

		rec := f.do(http.MethodPost, "/v1/token", "application/x-www-form-urlencoded", form.Encode(), "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/token", "application/x-www-form-urlencoded", "username=0800000001", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHTTP_Book(t *testing.T) {
	body := `{"customer":{"phone_number":"0800000002"},"bookings":[{"copies":2}]}`
	identity := authDto.Identity{AdminID: "admin-1", Level: adminModel.LevelZero, TokenID: "tok-1"}

	t.Run("requires a token", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(http.MethodPost, "/v1/book", "application/json", body, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects an unknown token", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Resolve(gomock.Any(), "unknown").Return(authDto.Identity{}, failure.InvalidToken)

		rec := f.do(http.MethodPost, "/v1/book", "application/json", body, "unknown")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("creates the booking", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Resolve(gomock.Any(), "live").Return(identity, nil)
		f.booking.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req bookingDto.CreateBookingRequest) (bookingDto.TransactionResponse, error) {
				assert.Equal(t, "0800000002", req.Customer.PhoneNumber)
				assert.Len(t, req.Bookings, 1)

				return bookingDto.TransactionResponse{ID: "txn-1", At: "2024-03-01"}, nil
			})

		rec := f.do(http.MethodPost, "/v1/book", "application/json", body, "live")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"at":"2024-03-01"`)
	})

	t.Run("rejects an empty order", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Resolve(gomock.Any(), "live").Return(identity, nil)

		rec := f.do(http.MethodPost, "/v1/book", "application/json", `{"customer":{"phone_number":"0800000002"},"bookings":[]}`, "live")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects an undecodable body", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Resolve(gomock.Any(), "live").Return(identity, nil)

		rec := f.do(http.MethodPost, "/v1/book", "application/json", `{"customer":`, "live")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("rejects a rate beyond the column", func(t *testing.T) {
		f := newFixture(t)
		f.auth.EXPECT().Resolve(gomock.Any(), "live").Return(identity, nil)

		rec := f.do(http.MethodPost, "/v1/book", "application/json", `{"customer":{"phone_number":"0800000002"},"bookings":[{"rate":10000000,"copies":1}]}`, "live")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestHTTP_CustomerSearchRequiresToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/customers/search?firstname=Jane", "", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
