package permissions_test

import (
	"net/http"
	"primecm/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	data := permissions.Get()

	assert.NotNil(t, data)
	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestPermissionData_FindPermissions(t *testing.T) {
	data := permissions.Get()

	tests := []struct {
		name         string
		path         string
		method       string
		wantSkip     bool
		wantOptional bool
		wantLevels   []string
	}{
		{name: "token is public", path: "/v1/token", method: http.MethodPost, wantSkip: true},
		{name: "register is optional", path: "/v1/register", method: http.MethodPost, wantOptional: true, wantLevels: []string{}},
		{name: "booking needs a level", path: "/v1/book", method: http.MethodPost, wantLevels: []string{"0", "1"}},
		{name: "method must match", path: "/v1/book", method: http.MethodGet},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantOptional, permission.Optional)
			assert.Equal(t, tt.wantLevels, permission.Permissions)
		})
	}
}

func TestPermission_Allows(t *testing.T) {
	assert.True(t, permissions.Permission{}.Allows("1"))
	assert.True(t, permissions.Permission{Permissions: []string{"0", "1"}}.Allows("1"))
	assert.False(t, permissions.Permission{Permissions: []string{"0"}}.Allows("1"))
}
