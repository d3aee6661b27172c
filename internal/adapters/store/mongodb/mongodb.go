// Package mongodb implements the ordered entity stores on MongoDB. Each kind
// lives in its own collection as {_id, order, created_at, body} documents.
// Multi-document writes use transactions, so the deployment must be a
// replica set or sharded cluster.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/jsamuelsen11/menu-cms/internal/adapters/store/document"
	"github.com/jsamuelsen11/menu-cms/internal/domain"
	"github.com/jsamuelsen11/menu-cms/internal/domain/category"
	"github.com/jsamuelsen11/menu-cms/internal/domain/ordering"
	"github.com/jsamuelsen11/menu-cms/internal/ports"
)

// lockCollection holds one guard document per kind. Appends increment it
// inside their transaction so that two concurrent appends write-conflict
// and one is retried.
const lockCollection = "order_locks"

// Compile-time interface checks.
var (
	_ ports.OrderedStore[category.Category] = (*Store[category.Category])(nil)
	_ ports.HealthChecker                   = (*DB)(nil)
)

// DB is a connected client bound to one database.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a client for uri, pings the primary and selects database.
func Connect(ctx context.Context, uri, database string, maxConns int) (*DB, error) {
	opts := options.Client().ApplyURI(uri)
	if maxConns > 0 {
		opts.SetMaxPoolSize(uint64(maxConns))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("pinging mongodb: %w", err)
	}
	return &DB{client: client, db: client.Database(database)}, nil
}

// Migrate creates the sort index for each kind.
func (d *DB) Migrate(ctx context.Context, kinds ...domain.Kind) error {
	for _, k := range kinds {
		_, err := d.db.Collection(k.Collection).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "order", Value: 1}, {Key: "created_at", Value: 1}, {Key: "_id", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("migrating %s: %w", k.Collection, err)
		}
	}
	return nil
}

// Name implements ports.HealthChecker.
func (d *DB) Name() string { return "store" }

// HealthCheck implements ports.HealthChecker.
func (d *DB) HealthCheck(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: %w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

// Drop removes the whole database. Used by tests.
func (d *DB) Drop(ctx context.Context) error {
	return d.db.Drop(ctx)
}

// Close disconnects the client.
func (d *DB) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return d.client.Disconnect(ctx)
}

type record struct {
	ID        string    `bson:"_id"`
	Order     int       `bson:"order"`
	CreatedAt time.Time `bson:"created_at"`
	Body      bson.Raw  `bson:"body"`
}

// Store persists one kind in its own collection.
type Store[T domain.Record[T]] struct {
	client *mongo.Client
	coll   *mongo.Collection
	locks  *mongo.Collection
	codec  document.Codec[T]
}

// New returns the store for the kind described by codec.
func New[T domain.Record[T]](d *DB, codec document.Codec[T]) *Store[T] {
	return &Store[T]{
		client: d.client,
		coll:   d.db.Collection(codec.Kind.Collection),
		locks:  d.db.Collection(lockCollection),
		codec:  codec,
	}
}

// ListOrdered returns all documents ordered by order, creation time and id.
func (s *Store[T]) ListOrdered(ctx context.Context) ([]T, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "order", Value: 1},
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cur, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, s.unavailable("list", err)
	}

	var recs []record
	if err := cur.All(ctx, &recs); err != nil {
		return nil, s.unavailable("list", err)
	}

	out := make([]T, 0, len(recs))
	for _, r := range recs {
		e, err := s.decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// Get returns the entity with id.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T

	var r record
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return zero, s.notFound(id)
	case err != nil:
		return zero, s.unavailable("get", err)
	}
	return s.decode(r)
}

// Append inserts entity after the current highest order.
func (s *Store[T]) Append(ctx context.Context, entity T) (T, error) {
	var zero T

	body, err := s.encodeBody(entity)
	if err != nil {
		return zero, err
	}

	r := record{
		ID:        ulid.Make().String(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		Body:      body,
	}

	err = s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		_, err := s.locks.UpdateOne(sc,
			bson.M{"_id": s.coll.Name()},
			bson.M{"$inc": bson.M{"seq": 1}},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			return err
		}

		var last struct {
			Order int `bson:"order"`
		}
		err = s.coll.FindOne(sc, bson.D{},
			options.FindOne().
				SetSort(bson.D{{Key: "order", Value: -1}}).
				SetProjection(bson.M{"order": 1}),
		).Decode(&last)
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return err
		}

		r.Order = last.Order + 1
		_, err = s.coll.InsertOne(sc, r)
		return err
	})
	if err != nil {
		return zero, s.unavailable("append", err)
	}

	return entity.WithEntityID(r.ID).WithSortOrder(r.Order).WithCreated(r.CreatedAt), nil
}

// Update replaces the body of an existing document and returns the stored
// order and creation time.
func (s *Store[T]) Update(ctx context.Context, entity T) (T, error) {
	var zero T

	body, err := s.encodeBody(entity)
	if err != nil {
		return zero, err
	}

	var r record
	err = s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": entity.EntityID()},
		bson.M{"$set": bson.M{"body": body}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&r)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return zero, s.notFound(entity.EntityID())
	case err != nil:
		return zero, s.unavailable("update", err)
	}

	return entity.WithSortOrder(r.Order).WithCreated(r.CreatedAt.UTC()), nil
}

// ReassignOrder applies every pair with one ordered bulk write inside a
// transaction. A pair that matches no document aborts the transaction.
func (s *Store[T]) ReassignOrder(ctx context.Context, pairs []ordering.Pair) error {
	if len(pairs) == 0 {
		return nil
	}

	models := make([]mongo.WriteModel, len(pairs))
	for i, p := range pairs {
		models[i] = mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetUpdate(bson.M{"$set": bson.M{"order": p.Order}})
	}

	err := s.inTransaction(ctx, func(sc mongo.SessionContext) error {
		res, err := s.coll.BulkWrite(sc, models, options.BulkWrite().SetOrdered(true))
		if err != nil {
			return err
		}
		if res.MatchedCount != int64(len(pairs)) {
			return fmt.Errorf("%s: %d of %d ids matched: %w",
				s.codec.Kind.Name, res.MatchedCount, len(pairs), domain.ErrBatchRejected)
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrBatchRejected):
		return err
	default:
		return s.unavailable("reassign", err)
	}
}

// Remove deletes the document with id.
func (s *Store[T]) Remove(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return s.unavailable("remove", err)
	}
	if res.DeletedCount == 0 {
		return s.notFound(id)
	}
	return nil
}

func (s *Store[T]) inTransaction(ctx context.Context, fn func(mongo.SessionContext) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}

// encodeBody converts the codec's JSON into a BSON sub-document through
// relaxed extended JSON.
func (s *Store[T]) encodeBody(entity T) (bson.Raw, error) {
	js, err := s.codec.Marshal(entity)
	if err != nil {
		return nil, err
	}

	var doc bson.D
	if err := bson.UnmarshalExtJSON(js, false, &doc); err != nil {
		return nil, fmt.Errorf("converting %s body to bson: %w", s.codec.Kind.Name, err)
	}
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting %s body to bson: %w", s.codec.Kind.Name, err)
	}
	return raw, nil
}

func (s *Store[T]) decode(r record) (T, error) {
	var zero T

	js, err := bson.MarshalExtJSON(r.Body, false, false)
	if err != nil {
		return zero, fmt.Errorf("converting %s body from bson: %w", s.codec.Kind.Name, err)
	}
	e, err := s.codec.Unmarshal(js)
	if err != nil {
		return zero, err
	}
	return e.WithEntityID(r.ID).WithSortOrder(r.Order).WithCreated(r.CreatedAt.UTC()), nil
}

func (s *Store[T]) notFound(id string) error {
	return fmt.Errorf("%s %s: %w", s.codec.Kind.Name, id, domain.ErrNotFound)
}

func (s *Store[T]) unavailable(op string, err error) error {
	return fmt.Errorf("mongodb %s %s: %w: %w", s.coll.Name(), op, domain.ErrUnavailable, err)
}
