// File: database/repository/patient/crud.go
package patientRepo

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cliniq/models"
)

func (r *mongoPatientRepo) Create(ctx context.Context, p *models.Patient) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = time.Now()
	_, err := r.coll.InsertOne(ctx, p)
	return err
}

func (r *mongoPatientRepo) GetByID(ctx context.Context, id, hospitalID string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var p models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id, "hospitalId": hospitalID}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns a hospital's patients ordered by name. A non-empty search term
// matches name or contact, case-insensitive.
func (r *mongoPatientRepo) List(ctx context.Context, hospitalID, search string) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"hospitalId": hospitalID}
	if search != "" {
		pattern := primitive.Regex{Pattern: search, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"contact": pattern},
		}
	}

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var patients []models.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// ListByName sorts in-process by folded name rather than relying on a mongo
// collation, so the ordering matches the case-insensitive comparisons the
// directory lookup performs.
func (r *mongoPatientRepo) ListByName(ctx context.Context, hospitalID string) ([]models.Patient, error) {
	patients, err := r.List(ctx, hospitalID, "")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(patients, func(i, j int) bool {
		return strings.ToLower(patients[i].Name) < strings.ToLower(patients[j].Name)
	})
	return patients, nil
}

func (r *mongoPatientRepo) Count(ctx context.Context, hospitalID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.coll.CountDocuments(ctx, bson.M{"hospitalId": hospitalID})
}
