// File: database/repository/staff/interface.go
package staffRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type StaffRepository interface {
	Create(ctx context.Context, st *models.Staff) error
	GetByID(ctx context.Context, id string) (*models.Staff, error)
	GetByEmail(ctx context.Context, email string) (*models.Staff, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Staff, error)
	SetTokenHash(ctx context.Context, id, tokenHash string) error
}

type mongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new MongoDB StaffRepository.
func NewMongoStaffRepo() StaffRepository {
	return &mongoStaffRepo{
		coll: database.DB().Collection("staff"),
	}
}
