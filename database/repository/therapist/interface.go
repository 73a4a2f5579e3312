// File: database/repository/therapist/interface.go
package therapistRepo

import (
	"context"

	"therabook/database"
	"therabook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// TherapistRepository exposes read access to the therapist roster.
type TherapistRepository interface {
	// GetByID returns the therapist with the given id, or nil when absent.
	GetByID(ctx context.Context, id string) (*models.Therapist, error)
	// ListActive returns all active therapists, sorted by name.
	ListActive(ctx context.Context) ([]models.Therapist, error)
	EnsureIndexes() error
}

type mongoTherapistRepo struct {
	coll *mongo.Collection
}

// NewMongoTherapistRepo constructs a new MongoDB TherapistRepository.
func NewMongoTherapistRepo() TherapistRepository {
	db := database.MongoClient.Database("therabook")
	return &mongoTherapistRepo{
		coll: db.Collection("therapists"),
	}
}
