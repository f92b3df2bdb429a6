package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"opsdesk/cmd/api/auth"
	"opsdesk/cmd/api/trace"
)

func newTestEngine(verifier TokenVerifier, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestTrace())
	r.GET("/secure", RequireRoles(verifier, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetString(ContextKeyUserID),
			"role":       c.GetString(ContextKeyRole),
			"request_id": trace.RequestIDFromContext(c.Request.Context()),
		})
	})
	return r
}

func doGet(t *testing.T, h http.Handler, header map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/secure?status=open", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRequireRoles(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "opsdesk", time.Hour)
	adminToken, err := jwtManager.Sign("u-admin", auth.RoleAdmin)
	require.NoError(t, err)
	salesToken, err := jwtManager.Sign("u-sales", auth.RoleSales)
	require.NoError(t, err)
	foreignToken, err := auth.NewJWTManager("other-secret", "opsdesk", time.Hour).Sign("u-x", auth.RoleAdmin)
	require.NoError(t, err)

	h := newTestEngine(jwtManager, auth.RoleAdmin, auth.RoleManager)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "bad signature", header: "Bearer " + foreignToken, wantStatus: http.StatusUnauthorized},
		{name: "role not allowed", header: "Bearer " + salesToken, wantStatus: http.StatusForbidden},
		{name: "allowed role", header: "Bearer " + adminToken, wantStatus: http.StatusOK, wantUser: "u-admin"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			header := map[string]string{}
			if tc.header != "" {
				header["Authorization"] = tc.header
			}
			rec, body := doGet(t, h, header)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, tc.wantUser, body["user_id"])
				assert.Equal(t, auth.RoleAdmin, body["role"])
			} else {
				assert.Equal(t, false, body["success"])
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestRequireRolesWithoutRolesOnlyAuthenticates(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "opsdesk", time.Hour)
	token, err := jwtManager.Sign("u-hr", auth.RoleHR)
	require.NoError(t, err)

	rec, body := doGet(t, newTestEngine(jwtManager), map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-hr", body["user_id"])
}

func TestRequestTracePropagatesIncomingID(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", "opsdesk", time.Hour)
	token, err := jwtManager.Sign("u-admin", auth.RoleAdmin)
	require.NoError(t, err)

	rec, body := doGet(t, newTestEngine(jwtManager), map[string]string{
		"Authorization": "Bearer " + token,
		HeaderRequestID: "req-fixed",
	})
	assert.Equal(t, "req-fixed", rec.Header().Get(HeaderRequestID))
	assert.Equal(t, "req-fixed", body["request_id"])
}

func TestRequestTraceGeneratesID(t *testing.T) {
	rec, _ := doGet(t, newTestEngine(auth.NewJWTManager("s", "opsdesk", time.Hour)), nil)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}
