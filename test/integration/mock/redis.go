package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client connected to a shared in-process Redis.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisServer = openRedisServer()
		redisConn = redis.NewClient(&redis.Options{
			Addr: redisServer.Addr(),
		})
	})
	return redisConn
}

// RedisServer exposes the in-process server for key assertions.
func RedisServer() *miniredis.Miniredis {
	NewRedis()
	return redisServer
}

func openRedisServer() *miniredis.Miniredis {
	server, err := miniredis.Run()
	if err != nil {
		panic(err)
	}
	return server
}

// ClearRedis removes every key.
func ClearRedis(conn *redis.Client) error {
	return conn.FlushAll(context.TODO()).Err()
}
