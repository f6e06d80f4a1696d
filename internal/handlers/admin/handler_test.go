package admin_test

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"kosan/internal/handlers/admin"
	"kosan/permissions"
	"kosan/shared/constant"
)

// Route registration does not touch the services, so nil dependencies are fine here.
func TestHandler_Router_UserManagement(t *testing.T) {
	handler := admin.New(nil, nil, nil, nil, nil, nil)

	mux := chi.NewRouter()
	mux.Route("/api", handler.Router)

	manifest := permissions.Get()

	tests := []struct {
		name        string
		method      string
		path        string
		wantPattern string
	}{
		{
			name:        "list users",
			method:      http.MethodGet,
			path:        "/api/admin/user/",
			wantPattern: "/api/admin/user/",
		},
		{
			name:        "delete user",
			method:      http.MethodDelete,
			path:        "/api/admin/user/user-1",
			wantPattern: "/api/admin/user/{id}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := chi.NewRouteContext()

			assert.True(t, mux.Match(rctx, tt.method, tt.path), "route must be registered")
			assert.Equal(t, tt.wantPattern, rctx.RoutePattern())

			perm := manifest.FindPermissions(rctx.RoutePattern(), tt.method)
			assert.False(t, perm.Skip)
			assert.Equal(t, []string{constant.RoleAdmin}, perm.Permissions)
		})
	}
}
