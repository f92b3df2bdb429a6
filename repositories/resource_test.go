package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"opsdesk/models"
	"opsdesk/pagination"
)

// recordingCollection captures what the engine asks of the backend.
type recordingCollection[T any] struct {
	items     []T
	total     int64
	gotFilter pagination.Filter
	gotSort   pagination.Sort
	gotSkip   int64
	gotLimit  int64
}

func (c *recordingCollection[T]) Count(_ context.Context, f pagination.Filter) (int64, error) {
	return c.total, nil
}

func (c *recordingCollection[T]) Find(_ context.Context, f pagination.Filter, s pagination.Sort, skip, limit int64) ([]T, error) {
	c.gotFilter, c.gotSort, c.gotSkip, c.gotLimit = f, s, skip, limit
	return c.items, nil
}

func TestResourceListUsesAllowListAndSort(t *testing.T) {
	testCases := []struct {
		name     string
		allowed  []string
		sort     pagination.Sort
		raw      map[string]string
		wantKeys pagination.Filter
	}{
		{
			name:     "leads",
			allowed:  LeadFilterFields,
			sort:     pagination.NewestFirst("createdAt"),
			raw:      map[string]string{"status": "new", "source": "web", "email": "x@y.z", "page": "3"},
			wantKeys: pagination.Filter{"status": "new", "source": "web"},
		},
		{
			name:     "alerts",
			allowed:  AlertFilterFields,
			sort:     pagination.NewestFirst("createdAt"),
			raw:      map[string]string{"userId": "u1", "vehicleId": "v9", "status": "open", "type": "dtc"},
			wantKeys: pagination.Filter{"userId": "u1", "vehicleId": "v9", "status": "open"},
		},
		{
			name:     "audit logs",
			allowed:  AuditLogFilterFields,
			sort:     pagination.NewestFirst("timestamp"),
			raw:      map[string]string{"action": "delete", "ipAddress": "10.0.0.1"},
			wantKeys: pagination.Filter{"action": "delete"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &recordingCollection[models.Lead]{total: 42, items: []models.Lead{{Name: "Ada"}}}
			r := resource[models.Lead]{records: rec, allowed: tc.allowed, sort: tc.sort, bounds: pagination.DefaultBounds()}

			res, err := r.List(context.Background(), tc.raw)
			require.NoError(t, err)

			assert.Equal(t, tc.wantKeys, rec.gotFilter)
			assert.Equal(t, tc.sort, rec.gotSort)
			assert.Equal(t, int64(42), res.Pagination.Total)
			assert.Equal(t, int64(5), res.Pagination.Pages)
			assert.Len(t, res.Items, 1)
		})
	}
}

func TestFindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewLeadRepository(mt.DB, pagination.DefaultBounds())
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "opsdesk.leads", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ada Lovelace"},
			{Key: "status", Value: "qualified"},
		}))

		lead, err := repo.FindByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, id, lead.ID)
		assert.Equal(mt, "Ada Lovelace", lead.Name)
		assert.Equal(mt, "qualified", lead.Status)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewAlertRepository(mt.DB, pagination.DefaultBounds())
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "opsdesk.alerts", mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, ErrNotFound)
	})
}
