// File: database/repository/doctor/interface.go
package doctorRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorRepository interface {
	Create(ctx context.Context, d *models.Doctor) error
	GetByID(ctx context.Context, id, hospitalID string) (*models.Doctor, error)
	GetByUsername(ctx context.Context, username string) (*models.Doctor, error)
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.Doctor, error)
	List(ctx context.Context, hospitalID, search string) ([]models.Doctor, error)
	UsernameTaken(ctx context.Context, username, excludeID, hospitalID string) (bool, error)
	SetCredentials(ctx context.Context, id, hospitalID, username, passwordHash string) error
	SetPhotoURL(ctx context.Context, id, hospitalID, photoURL string) error
	SetTokenHash(ctx context.Context, id, tokenHash string) error
	Count(ctx context.Context, hospitalID string) (int64, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo constructs a new MongoDB DoctorRepository.
func NewMongoDoctorRepo() DoctorRepository {
	return &mongoDoctorRepo{
		coll: database.DB().Collection("doctors"),
	}
}
