package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/supermercado/backoffice-system/internal/core/domain"
)

const productsCollection = "products"

type ProductRepository struct {
	coll *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{coll: db.Collection(productsCollection)}
}

type mongoProduct struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"nome"`
	Price       float64            `bson:"preco_atual"`
	PromoPrice  *float64           `bson:"preco_promocional,omitempty"`
	Category    string             `bson:"tipo"`
	Description string             `bson:"descricao"`
	ExpiryDate  string             `bson:"data_validade"`
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer cur.Close(ctx)

	var products []domain.Product
	for cur.Next(ctx) {
		var mp mongoProduct
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode product: %w", err)
		}
		products = append(products, *toDomainProduct(&mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProduct
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return toDomainProduct(&mp), nil
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProduct{
		Name:        p.Name,
		Price:       p.Price,
		PromoPrice:  p.PromoPrice,
		Category:    p.Category,
		Description: p.Description,
		ExpiryDate:  p.ExpiryDate,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return toDomainProduct(&doc), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(p.ID)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"nome":          p.Name,
		"preco_atual":   p.Price,
		"tipo":          p.Category,
		"descricao":     p.Description,
		"data_validade": p.ExpiryDate,
	}
	update := bson.M{"$set": set}
	if p.PromoPrice != nil {
		set["preco_promocional"] = *p.PromoPrice
	} else {
		// Promotion removal: drop the field entirely.
		update["$unset"] = bson.M{"preco_promocional": ""}
	}

	var mp mongoProduct
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("update product: %w", err)
	}
	return toDomainProduct(&mp), nil
}

func (r *ProductRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrProductNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func toDomainProduct(mp *mongoProduct) *domain.Product {
	return &domain.Product{
		ID:          mp.ID.Hex(),
		Name:        mp.Name,
		Price:       mp.Price,
		PromoPrice:  mp.PromoPrice,
		Category:    mp.Category,
		Description: mp.Description,
		ExpiryDate:  mp.ExpiryDate,
	}
}
