package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

const clientsCollection = "clients"

type ClientRepository struct {
	coll *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{coll: db.Collection(clientsCollection)}
}

type mongoClient struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Name     string             `bson:"nome"`
	Identity string             `bson:"identidade"`
	Age      int                `bson:"idade"`
	Tenure   int                `bson:"tempo_cliente"`
}

func (r *ClientRepository) List(ctx context.Context) ([]domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer cur.Close(ctx)

	var clients []domain.Client
	for cur.Next(ctx) {
		var mc mongoClient
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode client: %w", err)
		}
		clients = append(clients, *toDomainClient(&mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoClient
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return toDomainClient(&mc), nil
}

func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoClient{
		Name:     c.Name,
		Identity: c.Identity,
		Age:      c.Age,
		Tenure:   c.Tenure,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateClient
		}
		return nil, fmt.Errorf("insert client: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toDomainClient(&doc), nil
}

func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	oid, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return nil, domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"nome":          c.Name,
		"identidade":    c.Identity,
		"idade":         c.Age,
		"tempo_cliente": c.Tenure,
	}}

	var mc mongoClient
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateClient
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return toDomainClient(&mc), nil
}

func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClientNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the unique index backing the identidade constraint.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "identidade", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}

func toDomainClient(mc *mongoClient) *domain.Client {
	return &domain.Client{
		ID:       mc.ID.Hex(),
		Name:     mc.Name,
		Identity: mc.Identity,
		Age:      mc.Age,
		Tenure:   mc.Tenure,
	}
}
