package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the document-database connection and exposes the report and
// user collections. The driver pools connections internally; a single Mongo
// value is shared across requests.
type Mongo struct {
	client  *mongo.Client
	reports *mongo.Collection
	users   *mongo.Collection
}

// NewMongo connects to the document store and prepares collection handles
// and indexes.
func NewMongo(ctx context.Context, uri, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(dbName)
	m := &Mongo{
		client:  client,
		reports: db.Collection("reports"),
		users:   db.Collection("users"),
	}

	// One email / one external id = one account.
	_, err = m.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "google_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// Close disconnects from the document store.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Reports returns the report store view.
func (m *Mongo) Reports() ReportStore {
	return &mongoReports{col: m.reports}
}

// Users returns the user store view.
func (m *Mongo) Users() UserStore {
	return &mongoUsers{col: m.users}
}

type mongoReports struct {
	col *mongo.Collection
}

func (s *mongoReports) Insert(ctx context.Context, r *Report) (string, error) {
	r.ID = uuid.NewString()
	if _, err := s.col.InsertOne(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

func (s *mongoReports) List(ctx context.Context, status string, limit int64) ([]Report, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	reports := []Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *mongoReports) Get(ctx context.Context, id string) (*Report, error) {
	var r Report
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&r)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *mongoReports) SetStatus(ctx context.Context, id, status string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoReports) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoReports) Count(ctx context.Context, status string) (int64, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return s.col.CountDocuments(ctx, filter)
}

type mongoUsers struct {
	col *mongo.Collection
}

func (s *mongoUsers) FindByIdentity(ctx context.Context, googleID, email string) (*User, error) {
	var u User
	err := s.col.FindOne(ctx, bson.M{
		"$or": bson.A{
			bson.M{"google_id": googleID},
			bson.M{"email": email},
		},
	}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *mongoUsers) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *mongoUsers) Create(ctx context.Context, u *User) (string, error) {
	u.ID = uuid.NewString()
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		return "", err
	}
	return u.ID, nil
}

func (s *mongoUsers) UpdateProfile(ctx context.Context, id, name, picture string, lastLogin time.Time) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"name": name, "picture": picture, "last_login": lastLogin}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUsers) IncrementReports(ctx context.Context, id string, delta int) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$inc": bson.M{"reports_count": delta}},
	)
	return err
}

func (s *mongoUsers) List(ctx context.Context, limit int64) ([]User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *mongoUsers) Count(ctx context.Context) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{})
}
