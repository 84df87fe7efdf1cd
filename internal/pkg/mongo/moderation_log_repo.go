package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ModerationLogRepo interface {
	Append(ctx context.Context, entry *ModerationLog) error
	ListByTip(ctx context.Context, tipID uint64, limit, offset int64) ([]*ModerationLog, error)
}

type moderationLogRepoImpl struct {
	col *mongo.Collection
}

func NewModerationLogRepo(db *mongo.Database) ModerationLogRepo {
	return &moderationLogRepoImpl{
		col: db.Collection("moderation_log"),
	}
}

// Append insere uma decisão na trilha de auditoria
func (s *moderationLogRepoImpl) Append(ctx context.Context, entry *ModerationLog) error {
	_, err := s.col.InsertOne(ctx, entry)
	return err
}

// ListByTip lista as decisões de uma dica, mais recentes primeiro
func (s *moderationLogRepoImpl) ListByTip(ctx context.Context, tipID uint64, limit, offset int64) ([]*ModerationLog, error) {
	filter := bson.M{"tip_id": tipID}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit).
		SetSkip(offset)

	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var list []*ModerationLog
	if err = cursor.All(ctx, &list); err != nil {
		return nil, err
	}
	return list, nil
}
