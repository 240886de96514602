package patients

import (
	"context"
	"time"

	"caremind-service/internal/app/contracts"
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (patientID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, nil
	}
	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context, page, pageSize int) ([]models.Patient, int, error) {
	total, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.D{{Key: "fullName", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	var patients []models.Patient
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, int(total), nil
}

func (repo *PatientMongoRepository) UpdatePatient(ctx context.Context, patientID string, updateData map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	updateData["updatedAt"] = time.Now()
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": updateData})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// appendDischargeRequestFilter matches the patient only while no embedded
// request is pending, so the at-most-one-pending invariant holds even under
// concurrent submissions.
func appendDischargeRequestFilter(patientObjectID primitive.ObjectID) bson.M {
	return bson.M{
		"_id": patientObjectID,
		"dischargeRequests": bson.M{
			"$not": bson.M{
				"$elemMatch": bson.M{"status": constvars.DischargeRequestStatusPending},
			},
		},
	}
}

func appendDischargeRequestUpdate(request *models.DischargeRequest, now time.Time) bson.M {
	return bson.M{
		"$push": bson.M{"dischargeRequests": request},
		"$set":  bson.M{"updatedAt": now},
	}
}

// AppendDischargeRequest pushes the request behind the conditional filter.
// matched=false means the patient is missing or already has a pending request;
// the caller disambiguates with a read.
func (repo *PatientMongoRepository) AppendDischargeRequest(ctx context.Context, patientID string, request *models.DischargeRequest) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.UpdateOne(ctx,
		appendDischargeRequestFilter(objectID),
		appendDischargeRequestUpdate(request, time.Now()),
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

// reviewDischargeRequestFilter matches the embedded request only while its
// status is still pending, so of two racing reviews exactly one observes
// matched=true.
func reviewDischargeRequestFilter(patientObjectID primitive.ObjectID, requestID string) bson.M {
	return bson.M{
		"_id": patientObjectID,
		"dischargeRequests": bson.M{
			"$elemMatch": bson.M{
				"id":     requestID,
				"status": constvars.DischargeRequestStatusPending,
			},
		},
	}
}

// reviewDischargeRequestUpdate writes the review fields through the positional
// operator. The patient status flip on approval rides the same document write,
// keeping the request transition and the discharge atomic.
func reviewDischargeRequestUpdate(review *models.DischargeRequest, dischargePatient bool, now time.Time) bson.M {
	setFields := bson.M{
		"dischargeRequests.$.status":      review.Status,
		"dischargeRequests.$.reviewedBy":  review.ReviewedBy,
		"dischargeRequests.$.reviewedAt":  review.ReviewedAt,
		"dischargeRequests.$.reviewNotes": review.ReviewNotes,
		"updatedAt":                       now,
	}
	if dischargePatient {
		setFields["status"] = constvars.PatientStatusDischarged
	}
	return bson.M{"$set": setFields}
}

// ReviewDischargeRequest is the pending-to-terminal compare-and-swap.
func (repo *PatientMongoRepository) ReviewDischargeRequest(ctx context.Context, patientID, requestID string, review *models.DischargeRequest, dischargePatient bool) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.UpdateOne(ctx,
		reviewDischargeRequestFilter(objectID, requestID),
		reviewDischargeRequestUpdate(review, dischargePatient, time.Now()),
	)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}

func (repo *PatientMongoRepository) FindAllWithPendingDischargeRequests(ctx context.Context) ([]models.Patient, error) {
	filter := bson.M{
		"dischargeRequests": bson.M{
			"$elemMatch": bson.M{"status": constvars.DischargeRequestStatusPending},
		},
	}
	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var patients []models.Patient
	err = cursor.All(ctx, &patients)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return patients, nil
}

// RestorePatient flips a discharged patient back to active. The embedded
// discharge requests are left untouched as the audit trail.
func (repo *PatientMongoRepository) RestorePatient(ctx context.Context, patientID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "status": constvars.PatientStatusDischarged}
	update := bson.M{"$set": bson.M{
		"status":    constvars.PatientStatusActive,
		"updatedAt": time.Now(),
	}}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount == 1, nil
}
