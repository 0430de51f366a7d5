package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Redis key 前缀
	tableKeyPrefix = "table:"

	// 牌桌数据默认过期时间
	defaultTableExpiration = 2 * time.Hour
)

// CardData 一张牌（用于 Redis 序列化）
type CardData struct {
	Suit int `json:"s"`
	Rank int `json:"r"`
}

// TableData 牌桌快照（用于 Redis 序列化）
type TableData struct {
	ID        string       `json:"id"`
	State     int          `json:"state"`
	Hands     [][]CardData `json:"hands"`
	Reserve   []CardData   `json:"reserve"`
	Landlord  int          `json:"landlord"`
	LastPlay  []CardData   `json:"last_play,omitempty"`
	LastSeat  int          `json:"last_seat"`
	Passes    int          `json:"passes"`
	Winner    int          `json:"winner"`
	Remaining map[int]int  `json:"remaining"` // 记牌器：点数 -> 剩余张数
	CreatedAt int64        `json:"created_at"`
}

// RedisStore Redis 存储
type RedisStore struct {
	client     *redis.Client
	expiration time.Duration
}

// NewRedisStore 创建 Redis 存储，expiration <= 0 时使用默认过期时间
func NewRedisStore(client *redis.Client, expiration time.Duration) *RedisStore {
	if expiration <= 0 {
		expiration = defaultTableExpiration
	}
	return &RedisStore{client: client, expiration: expiration}
}

// SaveTable 保存牌桌到 Redis
func (rs *RedisStore) SaveTable(ctx context.Context, data *TableData) error {
	if data == nil {
		return nil
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("序列化牌桌数据失败: %w", err)
	}

	return rs.client.Set(ctx, tableKeyPrefix+data.ID, jsonData, rs.expiration).Err()
}

// LoadTable 从 Redis 加载牌桌，不存在时返回 nil, nil
func (rs *RedisStore) LoadTable(ctx context.Context, id string) (*TableData, error) {
	data, err := rs.client.Get(ctx, tableKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var tableData TableData
	if err := json.Unmarshal(data, &tableData); err != nil {
		return nil, fmt.Errorf("反序列化牌桌数据失败: %w", err)
	}
	return &tableData, nil
}

// DeleteTable 从 Redis 删除牌桌
func (rs *RedisStore) DeleteTable(ctx context.Context, id string) error {
	return rs.client.Del(ctx, tableKeyPrefix+id).Err()
}

// ListTableIDs 获取所有牌桌 ID
func (rs *RedisStore) ListTableIDs(ctx context.Context) ([]string, error) {
	var ids []string
	iter := rs.client.Scan(ctx, 0, tableKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(tableKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// SetTableExpiration 设置牌桌过期时间
func (rs *RedisStore) SetTableExpiration(ctx context.Context, id string, expiration time.Duration) error {
	return rs.client.Expire(ctx, tableKeyPrefix+id, expiration).Err()
}
