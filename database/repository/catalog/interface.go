// File: database/repository/catalog/interface.go
package catalogRepo

import (
	"context"

	"therabook/database"
	"therabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository exposes read access to the service catalog.
type ServiceRepository interface {
	// GetByID returns the service with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Service, error)
	// ListActive returns all active services, sorted by name.
	ListActive(ctx context.Context) ([]models.Service, error)
	EnsureIndexes() error
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	db := database.MongoClient.Database("therabook")
	return &mongoServiceRepo{
		coll: db.Collection("services"),
	}
}
