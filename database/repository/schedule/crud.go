// File: database/repository/schedule/crud.go
package scheduleRepo

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cliniq/models"
)

var dayOrder = map[string]int{
	"Monday":    1,
	"Tuesday":   2,
	"Wednesday": 3,
	"Thursday":  4,
	"Friday":    5,
	"Saturday":  6,
	"Sunday":    7,
}

func (r *mongoScheduleRepo) Upsert(ctx context.Context, w *models.WeeklyWindow) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	filter := bson.M{"doctorId": w.DoctorID, "day": w.Day, "hospitalId": w.HospitalID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, w, opts)
	return err
}

func (r *mongoScheduleRepo) GetByDoctorAndDay(ctx context.Context, doctorID, day, hospitalID string) (*models.WeeklyWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var w models.WeeklyWindow
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID, "day": day, "hospitalId": hospitalID}).Decode(&w)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

// ListByDoctor returns the doctor's windows in weekday order, Monday first.
func (r *mongoScheduleRepo) ListByDoctor(ctx context.Context, doctorID, hospitalID string) ([]models.WeeklyWindow, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"doctorId": doctorID, "hospitalId": hospitalID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var windows []models.WeeklyWindow
	if err := cursor.All(ctx, &windows); err != nil {
		return nil, err
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return dayOrder[windows[i].Day] < dayOrder[windows[j].Day]
	})
	return windows, nil
}
