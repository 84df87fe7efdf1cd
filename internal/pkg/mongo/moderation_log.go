package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ModerationLog registro de uma decisão de moderação sobre uma dica
type ModerationLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TipID      uint64             `bson:"tip_id" json:"tip_id"`
	ActorID    uint64             `bson:"actor_id" json:"actor_id"`
	FromStatus string             `bson:"from_status" json:"from_status"`
	ToStatus   string             `bson:"to_status" json:"to_status"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
