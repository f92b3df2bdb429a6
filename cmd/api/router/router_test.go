package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"opsdesk/cmd/api/auth"
	"opsdesk/cmd/api/middleware"
	"opsdesk/cmd/api/services"
	"opsdesk/config"
	"opsdesk/models"
	"opsdesk/pagination"
)

type stubStore[T any] struct {
	items []T
}

func (s stubStore[T]) List(_ context.Context, raw map[string]string) (pagination.Result[T], error) {
	req := pagination.ParseRequest(raw, nil, pagination.DefaultBounds())
	return pagination.Result[T]{
		Items:      s.items,
		Pagination: pagination.NewInfo(req.Page, req.Limit, int64(len(s.items))),
	}, nil
}

func (s stubStore[T]) FindByID(_ context.Context, _ primitive.ObjectID) (*T, error) {
	return nil, errors.New("not used")
}

func newTestRouter(t *testing.T, health func(context.Context) error) (*gin.Engine, *auth.JWTManager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := auth.NewJWTManager("test-secret", "opsdesk", time.Hour)
	deps := Dependencies{
		Config: config.AppConfig{App: config.AppSection{Env: config.EnvTest}},
		Health: health,
		Tokens: tokens,
		CRM: services.NewCRMService(
			stubStore[models.Lead]{items: []models.Lead{{Name: "Ada"}}},
			stubStore[models.Partner]{},
			stubStore[models.SalesTemplate]{},
		),
		Fleet: services.NewFleetService(stubStore[models.Alert]{}),
		Audit: services.NewAuditService(stubStore[models.AuditLog]{}),
	}
	return New(deps), tokens
}

func get(t *testing.T, r http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRoutesEnforceRoles(t *testing.T) {
	r, tokens := newTestRouter(t, nil)

	testCases := []struct {
		path       string
		role       string
		wantStatus int
	}{
		{path: "/api/v1/crm/leads", role: auth.RoleSales, wantStatus: http.StatusOK},
		{path: "/api/v1/crm/leads", role: auth.RoleFleet, wantStatus: http.StatusForbidden},
		{path: "/api/v1/partners", role: auth.RoleManager, wantStatus: http.StatusOK},
		{path: "/api/v1/partners", role: auth.RoleSales, wantStatus: http.StatusForbidden},
		{path: "/api/v1/fleet/alerts", role: auth.RoleFleet, wantStatus: http.StatusOK},
		{path: "/api/v1/fleet/alerts", role: auth.RoleHR, wantStatus: http.StatusForbidden},
		{path: "/api/v1/sales/templates", role: auth.RoleSales, wantStatus: http.StatusOK},
		{path: "/api/v1/sales/templates", role: auth.RoleManager, wantStatus: http.StatusForbidden},
		{path: "/api/v1/audit/logs", role: auth.RoleAdmin, wantStatus: http.StatusOK},
		{path: "/api/v1/audit/logs", role: auth.RoleManager, wantStatus: http.StatusForbidden},
	}

	for _, tc := range testCases {
		t.Run(tc.path+" as "+tc.role, func(t *testing.T) {
			token, err := tokens.Sign("u-1", tc.role)
			require.NoError(t, err)

			rec := get(t, r, tc.path, token)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t, nil)

	rec := get(t, r, "/api/v1/crm/leads", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(t, r, "/api/v1/crm/leads", "garbage")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListRouteEnvelopeAndRequestID(t *testing.T) {
	r, tokens := newTestRouter(t, nil)
	token, err := tokens.Sign("u-1", auth.RoleAdmin)
	require.NoError(t, err)

	rec := get(t, r, "/api/v1/crm/leads?page=1&limit=5", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Leads      []models.Lead   `json:"leads"`
			Pagination pagination.Info `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Leads, 1)
	assert.Equal(t, pagination.Info{Page: 1, Limit: 5, Total: 1, Pages: 1}, body.Data.Pagination)
}

func TestHealth(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		r, _ := newTestRouter(t, func(context.Context) error { return nil })
		rec := get(t, r, "/health", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("mongo down", func(t *testing.T) {
		r, _ := newTestRouter(t, func(context.Context) error { return errors.New("no reachable servers") })
		rec := get(t, r, "/health", "")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), `"degraded"`)
	})
}
