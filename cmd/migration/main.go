package main

import (
	"context"
	"log"
	"time"

	"caremind-service/internal/app/config"
	"caremind-service/internal/app/drivers/database"
	"caremind-service/internal/app/models"
	"caremind-service/internal/pkg/constvars"
	"caremind-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Prepares the database for a fresh deployment: collection indexes plus the
// initial admin account when no user exists yet.
func main() {
	driverConfig := config.NewDriverConfig()

	client := database.NewMongoDB(driverConfig)
	db := client.Database(driverConfig.MongoDB.DbName)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, db)
	seedAdminUser(ctx, db)

	err := client.Disconnect(ctx)
	if err != nil {
		log.Fatalf("Error disconnecting from MongoDB: %v", err)
	}
	log.Println("Migration finished")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	userIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "role", Value: 1}},
		},
	}
	_, err := db.Collection(constvars.MongoCollectionUsers).Indexes().CreateMany(ctx, userIndexes)
	if err != nil {
		log.Fatalf("Error creating user indexes: %v", err)
	}

	patientIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "dischargeRequests.status", Value: 1}},
		},
	}
	_, err = db.Collection(constvars.MongoCollectionPatients).Indexes().CreateMany(ctx, patientIndexes)
	if err != nil {
		log.Fatalf("Error creating patient indexes: %v", err)
	}

	notificationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
	}
	_, err = db.Collection(constvars.MongoCollectionNotifications).Indexes().CreateMany(ctx, notificationIndexes)
	if err != nil {
		log.Fatalf("Error creating notification indexes: %v", err)
	}

	log.Println("Indexes created")
}

func seedAdminUser(ctx context.Context, db *mongo.Database) {
	collection := db.Collection(constvars.MongoCollectionUsers)

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Fatalf("Error counting users: %v", err)
	}
	if count > 0 {
		log.Println("Users already exist, skipping admin seed")
		return
	}

	adminEmail := utils.GetEnvString("SEED_ADMIN_EMAIL", "admin@caremind.local")
	adminPassword := utils.GetEnvString("SEED_ADMIN_PASSWORD", "ChangeMe123!")

	hashed, err := utils.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("Error hashing admin password: %v", err)
	}

	now := time.Now()
	admin := &models.User{
		FullName: "Administrator",
		Email:    adminEmail,
		Password: hashed,
		Role:     constvars.RoleAdmin,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	_, err = collection.InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Error seeding admin user: %v", err)
	}
	log.Printf("Seeded admin user %s", adminEmail)
}
