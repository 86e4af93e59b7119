// config/db.go
package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectDB establishes connection to MongoDB
func ConnectDB() *mongo.Client {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = os.Getenv("MONGODB_URI")
	}

	// Only fall back to a local instance in development
	if mongoURI == "" {
		env := os.Getenv("ENV")
		if env == "development" || env == "dev" {
			mongoURI = "mongodb://localhost:27017"
		} else {
			log.Fatal("MONGO_URI or MONGODB_URI environment variable is required for production")
		}
	}

	log.Printf("Connecting to MongoDB at: %s", maskMongoURI(mongoURI))

	clientOptions := options.Client().ApplyURI(mongoURI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatal("MongoDB connection error:", err)
	}

	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("MongoDB ping error:", err)
	}

	log.Println("Connected to MongoDB")

	setupCollections(client)

	return client
}

// GetCollection returns MongoDB collection
func GetCollection(client *mongo.Client, collectionName string) *mongo.Collection {
	return client.Database(databaseName()).Collection(collectionName)
}

func databaseName() string {
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "pharmacy"
	}
	return dbName
}

// setupCollections ensures all necessary collections and indexes exist
func setupCollections(client *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := client.Database(databaseName())

	collections := []string{"users", "otps", "medicineTypes", "medicinePurchases"}
	for _, collName := range collections {
		db.CreateCollection(ctx, collName)
	}

	// Unique email index guards against duplicate accounts even when two
	// verifications race.
	userColl := db.Collection("users")
	emailIndexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := userColl.Indexes().CreateOne(ctx, emailIndexModel)
	if err != nil {
		log.Printf("Error creating email index: %v", err)
	}

	// One live challenge per (email, purpose); requesting again overwrites.
	otpColl := db.Collection("otps")
	otpIndexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}, {Key: "purpose", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err = otpColl.Indexes().CreateOne(ctx, otpIndexModel)
	if err != nil {
		log.Printf("Error creating otp index: %v", err)
	}

	// Owner-scoped reads sort newest first.
	for _, collName := range []string{"medicineTypes", "medicinePurchases"} {
		coll := db.Collection(collName)
		ownerIndexModel := mongo.IndexModel{
			Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
		}
		_, err := coll.Indexes().CreateOne(ctx, ownerIndexModel)
		if err != nil {
			log.Printf("Error creating owner index for %s: %v", collName, err)
		}
	}

	log.Println("Database collections and indexes setup complete")
}

// maskMongoURI masks the password in MongoDB URI for logging
func maskMongoURI(uri string) string {
	if idx := strings.Index(uri, "@"); idx > 0 {
		if colonIdx := strings.LastIndex(uri[:idx], ":"); colonIdx > 0 {
			return uri[:colonIdx+1] + "***" + uri[idx:]
		}
	}
	return uri
}
