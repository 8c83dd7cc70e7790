// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"

	"cliniq/database"
	"cliniq/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type ScheduleRepository interface {
	// Upsert replaces the doctor's window for the weekday.
	Upsert(ctx context.Context, w *models.WeeklyWindow) error
	GetByDoctorAndDay(ctx context.Context, doctorID, day, hospitalID string) (*models.WeeklyWindow, error)
	ListByDoctor(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error)
}

type mongoScheduleRepo struct {
	coll *mongo.Collection
}

// NewMongoScheduleRepo constructs a new MongoDB ScheduleRepository.
func NewMongoScheduleRepo() ScheduleRepository {
	return &mongoScheduleRepo{
		coll: database.DB().Collection("doctor_slots"),
	}
}
