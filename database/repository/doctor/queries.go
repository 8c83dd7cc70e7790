// File: database/repository/doctor/queries.go
package doctorRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cliniq/models"
)

// List returns a hospital's doctors ordered by name. A non-empty search term
// matches name or specialization, case-insensitive.
func (r *mongoDoctorRepo) List(ctx context.Context, hospitalID, search string) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"hospitalId": hospitalID}
	if search != "" {
		pattern := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"specialization": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

// UsernameTaken reports whether another doctor in the hospital already holds
// the username.
func (r *mongoDoctorRepo) UsernameTaken(ctx context.Context, username, excludeID, hospitalID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"username":   username,
		"hospitalId": hospitalID,
		"id":         bson.M{"$ne": excludeID},
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *mongoDoctorRepo) Count(ctx context.Context, hospitalID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"hospitalId": hospitalID})
}
