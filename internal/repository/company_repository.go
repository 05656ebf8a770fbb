package repository

import (
	"context"

	"product-catalog/internal/logger"
	"product-catalog/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.opentelemetry.io/otel"
)

type CompanyRepository struct {
	collection *mongo.Collection
}

var CompanyRepositoryTracer = otel.Tracer("CompanyRepository")

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{
		collection: db.Collection("company"),
	}
}

func (r *CompanyRepository) FindAll(ctx context.Context) ([]model.Company, error) {
	ctx, span := CompanyRepositoryTracer.Start(ctx, "CompanyRepository.FindAll")
	defer span.End()
	logger.Info(ctx, "Repository")

	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var companies []model.Company
	for cursor.Next(ctx) {
		var company model.Company
		if err := cursor.Decode(&company); err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}
	return companies, cursor.Err()
}
