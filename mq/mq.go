package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"embervale/db"
	"embervale/models"
	"embervale/rdx"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const karmaChannel = "karma-events"

// Emit publishes an entity event to Redis for the karma worker.
func Emit(ctx context.Context, eventName string, content models.Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), karmaChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event to Redis: %v", eventName, err)
	}
}

// karmaField maps an entity type to the contribution counter it bumps.
func karmaField(entityType string) string {
	switch entityType {
	case "plant":
		return "contributions.plants"
	case "medicine":
		return "contributions.medicines"
	case "listing", "proposal":
		return "contributions.trades"
	default:
		return ""
	}
}

// StartKarmaWorker consumes entity events and upserts per-survivor
// contribution counters. The leaderboard reads these rows.
func StartKarmaWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, karmaChannel)
	ch := sub.Channel()

	log.Println("[KarmaWorker] Listening for karma events...")

	for msg := range ch {
		var event models.Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[KarmaWorker] Failed to parse event: %v", err)
			continue
		}
		if event.Method != "POST" || event.UserId == "" {
			continue
		}

		field := karmaField(event.EntityType)
		if field == "" {
			log.Printf("[KarmaWorker] Unknown entity type: %s", event.EntityType)
			continue
		}

		update := bson.M{
			"$inc": bson.M{field: 1, "contributions.total": 1},
			"$set": bson.M{"updatedAt": time.Now()},
			"$setOnInsert": bson.M{
				"survivorid": event.UserId,
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := db.KarmaCollection.UpdateOne(ctx, bson.M{"survivorid": event.UserId}, update, opts); err != nil {
			log.Printf("[KarmaWorker] update error: %v", err)
			continue
		}
	}
}
