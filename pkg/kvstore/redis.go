package kvstore

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

var _ Store = (*RedisStore)(nil)

// RedisStore 把文档放进 Redis，适合多实例共享一份数据的部署
type RedisStore struct {
	client *redis.Client
	prefix string
}

type RedisOptions struct {
	Host     string
	Port     int
	Password string
	DB       int
	// Prefix 拼在所有 key 前面，避免和同库其他业务冲突
	Prefix string
}

func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password:     opts.Password,
		DB:           opts.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return &RedisStore{client: rdb, prefix: opts.Prefix}, nil
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(key string) ([]byte, error) {
	data, err := s.client.Get(context.Background(), s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Set(key string, value []byte) error {
	return s.client.Set(context.Background(), s.key(key), value, 0).Err()
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), s.key(key)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
