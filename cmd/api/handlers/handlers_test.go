package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"opsdesk/cmd/api/services"
	"opsdesk/models"
	"opsdesk/pagination"
	"opsdesk/repositories"
)

// leadCollection is an in-memory pagination.Collection over leads.
type leadCollection struct {
	leads []models.Lead
	err   error
}

func (l *leadCollection) matches(f pagination.Filter, lead models.Lead) bool {
	for k, v := range f {
		switch k {
		case "status":
			if lead.Status != v {
				return false
			}
		case "source":
			if lead.Source != v {
				return false
			}
		}
	}
	return true
}

func (l *leadCollection) Count(_ context.Context, f pagination.Filter) (int64, error) {
	if l.err != nil {
		return 0, l.err
	}
	var n int64
	for _, lead := range l.leads {
		if l.matches(f, lead) {
			n++
		}
	}
	return n, nil
}

func (l *leadCollection) Find(_ context.Context, f pagination.Filter, _ pagination.Sort, skip, limit int64) ([]models.Lead, error) {
	if l.err != nil {
		return nil, l.err
	}
	var out []models.Lead
	var seen int64
	// leads are stored newest first already
	for _, lead := range l.leads {
		if !l.matches(f, lead) {
			continue
		}
		if seen >= skip && int64(len(out)) < limit {
			out = append(out, lead)
		}
		seen++
	}
	return out, nil
}

// leadStore wires the engine to the in-memory collection the way
// repositories.LeadRepository wires it to Mongo.
type leadStore struct {
	col     *leadCollection
	byID    map[primitive.ObjectID]models.Lead
	findErr error
}

func (s *leadStore) List(ctx context.Context, raw map[string]string) (pagination.Result[models.Lead], error) {
	return pagination.List[models.Lead](ctx, s.col, raw, repositories.LeadFilterFields, pagination.NewestFirst("createdAt"), pagination.DefaultBounds())
}

func (s *leadStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Lead, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	lead, ok := s.byID[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &lead, nil
}

func seededStore(total, open int) *leadStore {
	s := &leadStore{col: &leadCollection{}, byID: map[primitive.ObjectID]models.Lead{}}
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < total; i++ {
		status := "closed"
		if i < open {
			status = "open"
		}
		lead := models.Lead{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("lead %d", i),
			Status:    status,
			Source:    "web",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
		s.col.leads = append(s.col.leads, lead)
		s.byID[lead.ID] = lead
	}
	return s
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newRouter(store *leadStore, opts Options) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCRMService(store, nil, nil)
	r := gin.New()
	r.GET("/crm/leads", ListLeadsHandler(svc, opts))
	r.GET("/crm/leads/:id", GetLeadHandler(svc, opts))
	return r
}

func serve(t *testing.T, r http.Handler, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestListLeadsHandlerEnvelope(t *testing.T) {
	r := newRouter(seededStore(25, 12), Options{})

	rec, body := serve(t, r, "/crm/leads?page=2&limit=10&status=open&unknown=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)

	var data struct {
		Leads      []models.Lead   `json:"leads"`
		Pagination pagination.Info `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.Equal(t, pagination.Info{Page: 2, Limit: 10, Total: 12, Pages: 2}, data.Pagination)
	assert.Len(t, data.Leads, 2)
}

func TestListLeadsHandlerEmptyListIsArray(t *testing.T) {
	r := newRouter(seededStore(0, 0), Options{})

	rec, body := serve(t, r, "/crm/leads?page=abc&limit=-5")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body.Data, &data))
	assert.JSONEq(t, `[]`, string(data["leads"]))
	assert.JSONEq(t, `{"page":1,"limit":10,"total":0,"pages":0}`, string(data["pagination"]))
}

func TestListLeadsHandlerQueryFailed(t *testing.T) {
	testCases := []struct {
		name      string
		opts      Options
		wantError bool
	}{
		{name: "production hides detail", opts: Options{ExposeErrors: false}},
		{name: "development shows detail", opts: Options{ExposeErrors: true}, wantError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := seededStore(3, 0)
			store.col.err = errors.New("server selection timeout")
			r := newRouter(store, tc.opts)

			rec, body := serve(t, r, "/crm/leads")
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.False(t, body.Success)
			assert.Equal(t, "Failed to fetch leads", body.Message)
			if tc.wantError {
				assert.Contains(t, body.Error, "server selection timeout")
			} else {
				assert.Empty(t, body.Error)
				assert.NotContains(t, rec.Body.String(), "server selection timeout")
			}
		})
	}
}

func TestListLeadsHandlerCancelled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := services.NewCRMService(seededStore(3, 0), nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/crm/leads", nil).WithContext(ctx)

	ListLeadsHandler(svc, Options{})(c)
	assert.Equal(t, StatusClientClosedRequest, rec.Code)
}

func TestGetLeadHandler(t *testing.T) {
	store := seededStore(2, 1)
	var known primitive.ObjectID
	for id := range store.byID {
		known = id
		break
	}

	testCases := []struct {
		name       string
		id         string
		findErr    error
		wantStatus int
	}{
		{name: "found", id: known.Hex(), wantStatus: http.StatusOK},
		{name: "invalid id", id: "zzz", wantStatus: http.StatusBadRequest},
		{name: "missing", id: primitive.NewObjectID().Hex(), wantStatus: http.StatusNotFound},
		{name: "backend failure", id: known.Hex(), findErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
		{name: "client cancelled", id: known.Hex(), findErr: context.Canceled, wantStatus: StatusClientClosedRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store.findErr = tc.findErr
			rec, body := serve(t, newRouter(store, Options{}), "/crm/leads/"+tc.id)

			assert.Equal(t, tc.wantStatus, rec.Code)
			assert.Equal(t, tc.wantStatus == http.StatusOK, body.Success)
			if tc.wantStatus == http.StatusOK {
				var data struct {
					Lead models.Lead `json:"lead"`
				}
				require.NoError(t, json.Unmarshal(body.Data, &data))
				assert.Equal(t, known, data.Lead.ID)
			}
		})
	}
}
