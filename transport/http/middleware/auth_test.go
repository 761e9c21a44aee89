package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"primecm/infras/otel/mocks"
	adminModel "primecm/internal/domains/admin/model"
	authMocks "primecm/internal/domains/auth/mocks"
	"primecm/internal/domains/auth/model/dto"
	"primecm/permissions"
	"primecm/shared/constant"
	"primecm/shared/failure"
	"primecm/transport/http/middleware"
)

type seen struct {
	called  bool
	adminID any
	level   any
}

func newRouter(t *testing.T, auth *authMocks.MockAuth, s *seen) http.Handler {
	t.Helper()

	m := middleware.NewAuthRoleMiddleware(auth, mocks.NewOtel(), &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/v1/token", Method: http.MethodPost, Skip: true},
			{Path: "/v1/register", Method: http.MethodPost, Optional: true},
			{Path: "/v1/book", Method: http.MethodPost, Permissions: []string{"0", "1"}},
			{Path: "/v1/zero-only", Method: http.MethodGet, Permissions: []string{"0"}},
		},
	})

	handler := func(w http.ResponseWriter, r *http.Request) {
		s.called = true
		s.adminID = r.Context().Value(constant.ContextKeyAdminID)
		s.level = r.Context().Value(constant.ContextKeyAdminLevel)

		w.WriteHeader(http.StatusNoContent)
	}

	router := chi.NewRouter()
	router.Route("/v1", func(r chi.Router) {
		r.Use(m.Auth, m.RBAC)
		r.Post("/token", handler)
		r.Post("/register", handler)
		r.Post("/book", handler)
		r.Get("/zero-only", handler)
	})

	return router
}

func TestAuthRole(t *testing.T) {
	levelOne := dto.Identity{AdminID: "admin-2", PhoneNumber: "0800000002", Level: adminModel.LevelOne, TokenID: "tok-2"}

	tests := []struct {
		name        string
		method      string
		path        string
		header      string
		setupMock   func(auth *authMocks.MockAuth)
		wantCode    int
		wantCalled  bool
		wantAdminID any
		wantLevel   any
	}{
		{
			name:       "public route needs no token",
			method:     http.MethodPost,
			path:       "/v1/token",
			wantCode:   http.StatusNoContent,
			wantCalled: true,
		},
		{
			name:     "missing token",
			method:   http.MethodPost,
			path:     "/v1/book",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed header",
			method:   http.MethodPost,
			path:     "/v1/book",
			header:   "Token abc",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "unknown token",
			method: http.MethodPost,
			path:   "/v1/book",
			header: "Bearer unknown",
			setupMock: func(auth *authMocks.MockAuth) {
				auth.EXPECT().Resolve(gomock.Any(), "unknown").Return(dto.Identity{}, failure.InvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			method: http.MethodPost,
			path:   "/v1/book",
			header: "Bearer live",
			setupMock: func(auth *authMocks.MockAuth) {
				auth.EXPECT().Resolve(gomock.Any(), "live").Return(levelOne, nil)
			},
			wantCode:    http.StatusNoContent,
			wantCalled:  true,
			wantAdminID: "admin-2",
			wantLevel:   adminModel.LevelOne,
		},
		{
			name:   "level not allowed",
			method: http.MethodGet,
			path:   "/v1/zero-only",
			header: "Bearer live",
			setupMock: func(auth *authMocks.MockAuth) {
				auth.EXPECT().Resolve(gomock.Any(), "live").Return(levelOne, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:       "optional route as guest",
			method:     http.MethodPost,
			path:       "/v1/register",
			wantCode:   http.StatusNoContent,
			wantCalled: true,
		},
		{
			name:   "optional route with token",
			method: http.MethodPost,
			path:   "/v1/register",
			header: "bearer live",
			setupMock: func(auth *authMocks.MockAuth) {
				auth.EXPECT().Resolve(gomock.Any(), "live").Return(levelOne, nil)
			},
			wantCode:    http.StatusNoContent,
			wantCalled:  true,
			wantAdminID: "admin-2",
			wantLevel:   adminModel.LevelOne,
		},
		{
			name:   "optional route rejects a bad token",
			method: http.MethodPost,
			path:   "/v1/register",
			header: "Bearer expired",
			setupMock: func(auth *authMocks.MockAuth) {
				auth.EXPECT().Resolve(gomock.Any(), "expired").Return(dto.Identity{}, failure.InvalidToken)
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := authMocks.NewMockAuth(ctrl)

			if tt.setupMock != nil {
				tt.setupMock(auth)
			}

			s := &seen{}
			router := newRouter(t, auth, s)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.header != "" {
				req.Header.Set(constant.RequestHeaderAuthorization, tt.header)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantCalled, s.called)
			assert.Equal(t, tt.wantAdminID, s.adminID)
			assert.Equal(t, tt.wantLevel, s.level)
		})
	}
}
