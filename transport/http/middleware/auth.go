package middleware

import (
	"context"
	"net/http"
	"primecm/infras/jwt"
	"primecm/infras/otel"
	adminModel "primecm/internal/domains/admin/model"
	authService "primecm/internal/domains/auth/service"
	"primecm/permissions"
	"primecm/shared/constant"
	"primecm/shared/failure"
	"primecm/transport/http/response"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	authService authService.Auth
	otel        otel.Otel
	permission  *permissions.PermissionData
}

func NewAuthRoleMiddleware(authService authService.Auth, otel otel.Otel, permission *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		authService: authService,
		otel:        otel,
		permission:  permission,
	}
}

// Auth resolves the bearer token into the calling admin and stores its
// identity in the request context. Routes marked optional let anonymous
// callers through; a token that is sent must still be valid.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, constant.OtelMiddlewareScopeName+".Auth")
		defer scope.End()

		path := routePattern(request)
		permission := m.find(path, request.Method)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		if m.skipped(permission) {
			next.ServeHTTP(writer, request)

			return
		}

		authHeader := request.Header.Get(constant.RequestHeaderAuthorization)
		if authHeader == constant.Empty && permission.Optional {
			next.ServeHTTP(writer, request)

			return
		}

		if authHeader == constant.Empty {
			err := failure.Unauthorized("Not authenticated")
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		token, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, failure.InvalidToken)

			return
		}

		identity, err := m.authService.Resolve(ctx, token)
		if err != nil {
			scope.TraceError(err)

			response.WithError(writer, err)

			return
		}

		ctx = request.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyAdminID, identity.AdminID)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminPhone, identity.PhoneNumber)
		ctx = context.WithValue(ctx, constant.ContextKeyAdminLevel, identity.Level)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, identity.TokenID)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// RBAC checks the caller's level against the route's allowed levels.
// Requires prior authentication via Auth.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelMiddlewareScopeName, constant.OtelMiddlewareScopeName+".RBAC")
		defer scope.End()

		permission := m.find(routePattern(request), request.Method)

		if m.skipped(permission) {
			next.ServeHTTP(writer, request)

			return
		}

		level, ok := request.Context().Value(constant.ContextKeyAdminLevel).(adminModel.Level)
		if !ok {
			if permission.Optional {
				next.ServeHTTP(writer, request)

				return
			}

			scope.TraceError(failure.InvalidToken)
			response.WithError(writer, failure.InvalidToken)

			return
		}

		callerLevel := strconv.Itoa(int(level))

		if !permission.Allows(callerLevel) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"admin_level":    callerLevel,
				"allowed_levels": permission.Permissions,
				"reason":         "level_not_allowed",
			})

			response.WithError(writer, err)

			return
		}

		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) find(path, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	return m.permission.FindPermissions(path, method)
}

func (m *authRoleImpl) skipped(permission permissions.Permission) bool {
	return permission.Skip || (m.permission != nil && m.permission.Skip)
}

// routePattern returns the registered chi pattern for the request, falling
// back to the raw path when no route matches.
func routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	if pattern := rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path); pattern != constant.Empty {
		return pattern
	}

	return request.URL.Path
}
