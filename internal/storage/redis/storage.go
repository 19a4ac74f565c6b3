package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/storage"
)

// Hash field names for play record hashes
const (
	fieldUserID        = "user_id"
	fieldGameTitle     = "game_title"
	fieldPlays         = "plays"
	fieldTotalDuration = "total_duration"
	fieldLastPlayed    = "last_played"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	// Use pipeline for atomic save + index update
	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.Set(ctx, usernameIndexKey(user.Username), string(user.ID), 0)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	// Look up user ID from username index
	userIDStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	return s.GetUser(ctx, model.UserID(userIDStr))
}

func (s *Storage) UpdateUserLastLogin(ctx context.Context, id model.UserID, at time.Time) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	t := at
	user.LastLogin = &t
	return s.SaveUser(ctx, user)
}

// Play ledger operations

// RecordPlay applies the find-or-create-and-increment as one transaction.
// HINCRBY/HINCRBYFLOAT create the hash when absent, so a first play and a
// repeat play are the same server-side operation and concurrent reports
// for one key cannot lose an increment.
func (s *Storage) RecordPlay(ctx context.Context, userID model.UserID, gameTitle string, duration float64, now time.Time) error {
	key := playKey(userID, gameTitle)

	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, fieldPlays, 1)
	pipe.HIncrByFloat(ctx, key, fieldTotalDuration, duration)
	pipe.HSet(ctx, key,
		fieldUserID, string(userID),
		fieldGameTitle, gameTitle,
		fieldLastPlayed, now.UTC().Format(time.RFC3339Nano),
	)
	pipe.SAdd(ctx, playsForUserIndexKey(userID), key)
	pipe.SAdd(ctx, allPlaysIndexKey(), key)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlaysForUser(ctx context.Context, userID model.UserID) ([]*model.PlayRecord, error) {
	return s.playsFromIndex(ctx, playsForUserIndexKey(userID))
}

func (s *Storage) AllPlays(ctx context.Context) ([]*model.PlayRecord, error) {
	return s.playsFromIndex(ctx, allPlaysIndexKey())
}

func (s *Storage) playsFromIndex(ctx context.Context, indexKey string) ([]*model.PlayRecord, error) {
	keys, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return []*model.PlayRecord{}, nil
	}

	// Fetch all hashes in one round trip
	pipe := s.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(keys))
	for i, key := range keys {
		cmds[i] = pipe.HGetAll(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	records := make([]*model.PlayRecord, 0, len(keys))
	for _, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			continue // Record may have been removed out of band
		}
		record, err := playRecordFromHash(fields)
		if err != nil {
			continue // Skip invalid data
		}
		records = append(records, record)
	}

	return records, nil
}

func playRecordFromHash(fields map[string]string) (*model.PlayRecord, error) {
	plays, err := strconv.ParseInt(fields[fieldPlays], 10, 64)
	if err != nil {
		return nil, err
	}

	totalDuration, err := strconv.ParseFloat(fields[fieldTotalDuration], 64)
	if err != nil {
		return nil, err
	}

	lastPlayed, err := time.Parse(time.RFC3339Nano, fields[fieldLastPlayed])
	if err != nil {
		return nil, err
	}

	return &model.PlayRecord{
		UserID:        model.UserID(fields[fieldUserID]),
		GameTitle:     fields[fieldGameTitle],
		Plays:         plays,
		TotalDuration: totalDuration,
		LastPlayed:    lastPlayed,
	}, nil
}

// Contact operations

func (s *Storage) SaveContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, contactKey(msg.ID), data, 0).Err()
}
