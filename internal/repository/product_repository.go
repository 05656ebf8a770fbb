package repository

import (
	"context"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel"
)

type ProductRepository struct {
	collection *mongo.Collection
}

var ProductRepositoryTracer = otel.Tracer("ProductRepository")

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{
		collection: db.Collection("product"),
	}
}

// MaxPrice returns the highest price across the whole collection, 0 when
// empty. Full-collection aggregate, recomputed per request.
func (r *ProductRepository) MaxPrice(ctx context.Context) (float64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.MaxPrice")
	defer span.End()
	logger.Info(ctx, "Repository")

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "maxPrice", Value: bson.D{{Key: "$max", Value: "$price"}}},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var result struct {
		MaxPrice float64 `bson:"maxPrice"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, err
		}
	}
	return result.MaxPrice, cursor.Err()
}

func (r *ProductRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Count")
	defer span.End()
	logger.Info(ctx, "Repository")

	if filter == nil {
		filter = bson.M{}
	}
	return r.collection.CountDocuments(ctx, filter)
}

// Find returns the page window of records matching filter, sorted when sort
// is non-empty, in natural order otherwise.
func (r *ProductRepository) Find(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]model.Product, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.Find")
	defer span.End()
	logger.Info(ctx, "Repository")

	if filter == nil {
		filter = bson.M{}
	}

	opts := options.Find().SetSkip(skip).SetLimit(limit)
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []model.Product
	for cursor.Next(ctx) {
		var product model.Product
		if err := cursor.Decode(&product); err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, cursor.Err()
}

// FindByID fetches a single record by id, constrained by the same filter
// document as the collection queries. Returns mongo.ErrNoDocuments on miss.
func (r *ProductRepository) FindByID(ctx context.Context, id int, filter bson.M) (*model.Product, error) {
	ctx, span := ProductRepositoryTracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()
	logger.Info(ctx, "Repository")

	merged := bson.M{"_id": id}
	for k, v := range filter {
		merged[k] = v
	}

	var product model.Product
	if err := r.collection.FindOne(ctx, merged).Decode(&product); err != nil {
		return nil, err
	}
	return &product, nil
}
