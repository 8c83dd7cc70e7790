// File: database/repository/doctor/crud.go
package doctorRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cliniq/models"
)

func (r *mongoDoctorRepo) Create(ctx context.Context, d *models.Doctor) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	d.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, d)
	return err
}

func (r *mongoDoctorRepo) GetByID(ctx context.Context, id, hospitalID string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "hospitalId": hospitalID}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDoctorRepo) GetByUsername(ctx context.Context, username string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Credentialless doctors cannot log in.
	filter := bson.M{"username": username, "passwordHash": bson.M{"$exists": true, "$ne": ""}}
	var d models.Doctor
	err := r.coll.FindOne(ctx, filter).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDoctorRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var d models.Doctor
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *mongoDoctorRepo) SetCredentials(ctx context.Context, id, hospitalID, username, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"username": username, "passwordHash": passwordHash}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id, "hospitalId": hospitalID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) SetPhotoURL(ctx context.Context, id, hospitalID, photoURL string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "hospitalId": hospitalID},
		bson.M{"$set": bson.M{"photoUrl": photoURL}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoDoctorRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"tokenHash": tokenHash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
