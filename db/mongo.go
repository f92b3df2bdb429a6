package db

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"opsdesk/config"
)

const (
	CollectionLeads          = "leads"
	CollectionPartners       = "partners"
	CollectionAlerts         = "alerts"
	CollectionSalesTemplates = "sales_templates"
	CollectionAuditLogs      = "audit_logs"
)

// Connect opens a client and pings the primary, retrying the ping with
// exponential backoff until cfg.ConnectMaxElapsedSeconds runs out.
// notify, if non-nil, is called before each retry.
func Connect(ctx context.Context, cfg config.MongoConfig, notify backoff.Notify) (*mongo.Client, *mongo.Database, error) {
	timeout := time.Duration(cfg.ConnectTimeoutSeconds) * time.Second
	cl, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout))
	if err != nil {
		return nil, nil, eris.Wrap(err, "mongo connect")
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = time.Duration(cfg.ConnectMaxElapsedSeconds) * time.Second
	ping := func() error {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return cl.Ping(pctx, readpref.Primary())
	}
	if err := backoff.RetryNotify(ping, backoff.WithContext(bo, ctx), notify); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, nil, eris.Wrap(err, "mongo ping")
	}

	return cl, cl.Database(cfg.Database), nil
}

// Ping checks the database is reachable; used by the health endpoint.
func Ping(ctx context.Context, d *mongo.Database) error {
	return d.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the indexes backing each list endpoint's filters and
// newest-first sort.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollectionLeads: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_status_created_at"),
			},
			{
				Keys:    bson.D{{Key: "source", Value: 1}},
				Options: options.Index().SetName("idx_source"),
			},
			{
				Keys:    bson.D{{Key: "assignedTo", Value: 1}},
				Options: options.Index().SetName("idx_assigned_to"),
			},
		},
		CollectionPartners: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}, {Key: "tier", Value: 1}},
				Options: options.Index().SetName("idx_status_tier"),
			},
		},
		CollectionAlerts: {
			{
				Keys:    bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("idx_created_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_user_created_at"),
			},
			{
				Keys:    bson.D{{Key: "vehicleId", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_vehicle_created_at"),
			},
			{
				Keys:    bson.D{{Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_status"),
			},
		},
		CollectionSalesTemplates: {
			{
				Keys:    bson.D{{Key: "updatedAt", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("idx_updated_at_desc"),
			},
			{
				Keys:    bson.D{{Key: "category", Value: 1}, {Key: "status", Value: 1}},
				Options: options.Index().SetName("idx_category_status"),
			},
		},
		CollectionAuditLogs: {
			{
				Keys:    bson.D{{Key: "timestamp", Value: -1}, {Key: "_id", Value: -1}},
				Options: options.Index().SetName("idx_timestamp_desc"),
			},
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "timestamp", Value: -1}},
				Options: options.Index().SetName("idx_user_timestamp"),
			},
			{
				Keys:    bson.D{{Key: "resource", Value: 1}, {Key: "action", Value: 1}},
				Options: options.Index().SetName("idx_resource_action"),
			},
		},
	}

	for name, models := range specs {
		if _, err := d.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return eris.Wrapf(err, "ensure indexes on %s", name)
		}
	}
	return nil
}
