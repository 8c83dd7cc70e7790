// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cliniq/models"
)

// listSort orders newest first: date descending, then slot descending.
var listSort = bson.D{{Key: "date", Value: -1}, {Key: "timeSlot", Value: -1}}

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// List applies the status and doctor filters at the query level. The free-text
// search matches names, which live in other collections, so the service layer
// resolves names and filters on top of this result.
func (r *mongoAppointmentRepo) List(ctx context.Context, hospitalID string, filter models.AppointmentFilter) ([]models.Appointment, error) {
	q := bson.M{"hospitalId": hospitalID}
	if filter.DoctorID != "" {
		q["doctorId"] = filter.DoctorID
	}
	if filter.Status != "" {
		q["status"] = filter.Status
	}
	return r.find(ctx, q, options.Find().SetSort(listSort))
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID, hospitalID string) ([]models.Appointment, error) {
	q := bson.M{"patientId": patientID, "hospitalId": hospitalID}
	return r.find(ctx, q, options.Find().SetSort(listSort))
}

func (r *mongoAppointmentRepo) BookedStarts(ctx context.Context, doctorID, date, hospitalID string) ([]string, error) {
	q := bson.M{
		"doctorId":   doctorID,
		"date":       date,
		"hospitalId": hospitalID,
		"status":     bson.M{"$ne": models.StatusCancelled},
	}
	appts, err := r.find(ctx, q, nil)
	if err != nil {
		return nil, err
	}

	starts := make([]string, 0, len(appts))
	for _, a := range appts {
		starts = append(starts, a.TimeSlot)
	}
	return starts, nil
}

func (r *mongoAppointmentRepo) Count(ctx context.Context, hospitalID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"hospitalId": hospitalID})
}

func (r *mongoAppointmentRepo) Recent(ctx context.Context, hospitalID string, limit int64) ([]models.Appointment, error) {
	opts := options.Find().SetSort(listSort).SetLimit(limit)
	return r.find(ctx, bson.M{"hospitalId": hospitalID}, opts)
}

func (r *mongoAppointmentRepo) ForDoctorOnDate(ctx context.Context, doctorID, date, hospitalID string) ([]models.Appointment, error) {
	q := bson.M{"doctorId": doctorID, "date": date, "hospitalId": hospitalID}
	opts := options.Find().SetSort(bson.D{{Key: "timeSlot", Value: 1}})
	return r.find(ctx, q, opts)
}

func (r *mongoAppointmentRepo) UpcomingForDoctor(ctx context.Context, doctorID, after, hospitalID string, limit int64) ([]models.Appointment, error) {
	q := bson.M{"doctorId": doctorID, "date": bson.M{"$gt": after}, "hospitalId": hospitalID}
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "timeSlot", Value: 1}}).
		SetLimit(limit)
	return r.find(ctx, q, opts)
}

// LastVisitDates maps patient ID to the most recent appointment date the
// patient had with the doctor.
func (r *mongoAppointmentRepo) LastVisitDates(ctx context.Context, doctorID, hospitalID string) (map[string]string, error) {
	appts, err := r.find(ctx, bson.M{"doctorId": doctorID, "hospitalId": hospitalID}, nil)
	if err != nil {
		return nil, err
	}

	last := make(map[string]string, len(appts))
	for _, a := range appts {
		if a.Date > last[a.PatientID] {
			last[a.PatientID] = a.Date
		}
	}
	return last, nil
}
