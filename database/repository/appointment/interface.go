// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *models.Appointment) error
	GetByID(ctx context.Context, id, hospitalID string) (*models.Appointment, error)
	List(ctx context.Context, hospitalID string, filter models.AppointmentFilter) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID, hospitalID string) ([]models.Appointment, error)
	Delete(ctx context.Context, id, hospitalID string) error
	UpdateStatus(ctx context.Context, id, doctorID, hospitalID, status string) error
	// BookedStarts returns the time_slot values of all non-Cancelled
	// appointments for the doctor on the date.
	BookedStarts(ctx context.Context, doctorID, date, hospitalID string) ([]string, error)
	Count(ctx context.Context, hospitalID string) (int64, error)
	Recent(ctx context.Context, hospitalID string, limit int64) ([]models.Appointment, error)
	ForDoctorOnDate(ctx context.Context, doctorID, date, hospitalID string) ([]models.Appointment, error)
	UpcomingForDoctor(ctx context.Context, doctorID, after, hospitalID string, limit int64) ([]models.Appointment, error)
	LastVisitDates(ctx context.Context, doctorID, hospitalID string) (map[string]string, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
