// File: database/repository/therapist/therapist_mongo.go
package therapistRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"therabook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoTherapistRepo) GetByID(ctx context.Context, id string) (*models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var th models.Therapist
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&th)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch therapist %s: %w", id, err)
	}
	return &th, nil
}

func (r *mongoTherapistRepo) ListActive(ctx context.Context) ([]models.Therapist, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{"active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list active therapists: %w", err)
	}
	defer cursor.Close(ctx)

	var therapists []models.Therapist
	if err := cursor.All(ctx, &therapists); err != nil {
		return nil, fmt.Errorf("failed to decode therapists: %w", err)
	}
	return therapists, nil
}
