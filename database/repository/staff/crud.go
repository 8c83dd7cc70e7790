// File: database/repository/staff/crud.go
package staffRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"cliniq/models"
)

// ErrDuplicateEmail is returned when a staff email is already registered.
var ErrDuplicateEmail = errors.New("email already exists")

func (r *mongoStaffRepo) Create(ctx context.Context, st *models.Staff) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	existing := r.coll.FindOne(ctx, bson.M{"email": st.Email})
	if existing.Err() == nil {
		return ErrDuplicateEmail
	}
	if !errors.Is(existing.Err(), mongo.ErrNoDocuments) {
		return existing.Err()
	}

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	st.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, st)
	return err
}

func (r *mongoStaffRepo) GetByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoStaffRepo) GetByEmail(ctx context.Context, email string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.Staff
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&st)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoStaffRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var st models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"tokenHash": tokenHash}).Decode(&st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *mongoStaffRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
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
