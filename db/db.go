package db

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	PlantsCollection    *mongo.Collection
	MedicinesCollection *mongo.Collection
	BarterCollection    *mongo.Collection
	ProposalsCollection *mongo.Collection
	UserCollection      *mongo.Collection
	KarmaCollection     *mongo.Collection
	Client              *mongo.Client
)

// Initialize MongoDB connection
func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	var err error
	Client, err = mongo.Connect(context.TODO(), options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	database := Client.Database("embervale")
	PlantsCollection = database.Collection("plants")
	MedicinesCollection = database.Collection("medicines")
	BarterCollection = database.Collection("barter")
	ProposalsCollection = database.Collection("proposals")
	UserCollection = database.Collection("users")
	KarmaCollection = database.Collection("karma")
}
