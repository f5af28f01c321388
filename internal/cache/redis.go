package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// 啟動時等 Redis 回應的上限，超過就放棄啟動
const pingTimeout = 5 * time.Second

type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 連上存放 session 的 Redis，Ping 不通就關閉連線並回傳錯誤，
// 服務不會在沒有 session 存放區的情況下啟動
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
