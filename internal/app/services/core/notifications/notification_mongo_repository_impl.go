package notifications

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

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

// CreateNotifications inserts the whole fan-out batch in one call. Ordered is
// off so one bad row does not sink the rest of the recipients.
func (repo *NotificationMongoRepository) CreateNotifications(ctx context.Context, notifications []models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	documents := make([]interface{}, 0, len(notifications))
	for i := range notifications {
		documents = append(documents, notifications[i])
	}
	_, err := repo.Collection.InsertMany(ctx, documents, options.InsertMany().SetOrdered(false))
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *NotificationMongoRepository) FindByRecipient(ctx context.Context, recipientID string) ([]models.Notification, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"recipientId": recipientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	var notifications []models.Notification
	err = cursor.All(ctx, &notifications)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (repo *NotificationMongoRepository) FindByID(ctx context.Context, notificationID string) (*models.Notification, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, nil
	}
	var notification models.Notification
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (repo *NotificationMongoRepository) MarkRead(ctx context.Context, notificationID string) error {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *NotificationMongoRepository) MarkAllRead(ctx context.Context, recipientID string) error {
	filter := bson.M{"recipientId": recipientID, "read": false}
	update := bson.M{"$set": bson.M{"read": true, "updatedAt": time.Now()}}
	_, err := repo.Collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *NotificationMongoRepository) DeleteNotification(ctx context.Context, notificationID string) error {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
