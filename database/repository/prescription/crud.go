// File: database/repository/prescription/crud.go
package prescriptionRepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cliniq/models"
)

func (r *mongoPrescriptionRepo) Upsert(ctx context.Context, p *models.Prescription) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	now := time.Now()
	p.UpdatedAt = now

	filter := bson.M{"appointmentId": p.AppointmentID, "hospitalId": p.HospitalID}

	var existing models.Prescription
	err := r.coll.FindOne(ctx, filter).Decode(&existing)
	switch {
	case err == nil:
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	case errors.Is(err, mongo.ErrNoDocuments):
		p.ID = uuid.New().String()
		p.CreatedAt = now
	default:
		return err
	}

	opts := options.Replace().SetUpsert(true)
	_, err = r.coll.ReplaceOne(ctx, filter, p, opts)
	return err
}

func (r *mongoPrescriptionRepo) GetByAppointment(ctx context.Context, appointmentID, hospitalID string) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Prescription
	err := r.coll.FindOne(ctx, bson.M{"appointmentId": appointmentID, "hospitalId": hospitalID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mongoPrescriptionRepo) ListByAppointments(ctx context.Context, appointmentIDs []string, hospitalID string) ([]models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"appointmentId": bson.M{"$in": appointmentIDs},
		"hospitalId":    hospitalID,
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var prescriptions []models.Prescription
	if err := cursor.All(ctx, &prescriptions); err != nil {
		return nil, err
	}
	return prescriptions, nil
}
