// File: database/repository/patient/interface.go
package patientRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PatientRepository interface {
	Create(ctx context.Context, p *models.Patient) error
	GetByID(ctx context.Context, id, hospitalID string) (*models.Patient, error)
	List(ctx context.Context, hospitalID, search string) ([]models.Patient, error)
	// ListByName returns all of a hospital's patients sorted ascending by
	// case-insensitive name, the precondition the directory lookup relies on.
	ListByName(ctx context.Context, hospitalID string) ([]models.Patient, error)
	Count(ctx context.Context, hospitalID string) (int64, error)
}

type mongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo constructs a new MongoDB PatientRepository.
func NewMongoPatientRepo() PatientRepository {
	return &mongoPatientRepo{
		coll: database.DB().Collection("patients"),
	}
}
