package repository

import (
	"context"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
)

type CategoryRepository struct {
	collection *mongo.Collection
}

var CategoryRepositoryTracer = otel.Tracer("CategoryRepository")

func NewCategoryRepository(db *mongo.Database) *CategoryRepository {
	return &CategoryRepository{
		collection: db.Collection("category"),
	}
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	ctx, span := CategoryRepositoryTracer.Start(ctx, "CategoryRepository.FindAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var categories []model.Category
	for cursor.Next(ctx) {
		var category model.Category
		if err := cursor.Decode(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, cursor.Err()
}
