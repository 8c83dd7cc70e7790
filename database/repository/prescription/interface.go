// File: database/repository/prescription/interface.go
package prescriptionRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type PrescriptionRepository interface {
	// Upsert saves the prescription for its appointment, replacing any
	// existing one (one prescription per appointment).
	Upsert(ctx context.Context, p *models.Prescription) error
	GetByAppointment(ctx context.Context, appointmentID, hospitalID string) (*models.Prescription, error)
	ListByAppointments(ctx context.Context, appointmentIDs []string, hospitalID string) ([]models.Prescription, error)
}

type mongoPrescriptionRepo struct {
	coll *mongo.Collection
}

// NewMongoPrescriptionRepo constructs a new MongoDB PrescriptionRepository.
func NewMongoPrescriptionRepo() PrescriptionRepository {
	return &mongoPrescriptionRepo{
		coll: database.DB().Collection("prescriptions"),
	}
}
