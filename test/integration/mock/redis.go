package mock

import (
	"context"
	"path"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisConnOnce sync.Once
var redisConn *redis.Client
var redisServer *miniredis.Miniredis

// NewRedis returns a client for a shared in-process miniredis.
func NewRedis() *redis.Client {
	redisConnOnce.Do(func() {
		redisConn = openRedisConn()
	})

	return redisConn
}

func openRedisConn() *redis.Client {
	var err error
	redisServer, err = miniredis.Run()
	if err != nil {
		panic(err)
	}

	return redis.NewClient(&redis.Options{
		Addr: redisServer.Addr(),
	})
}

// ClearRedis drops every key, including in-flight mutation markers.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}

// RedisKeys lists the keys matching pattern.
func RedisKeys(pattern string) []string {
	if redisServer == nil {
		return nil
	}
	var matched []string
	for _, key := range redisServer.Keys() {
		if ok, _ := path.Match(pattern, key); ok {
			matched = append(matched, key)
		}
	}
	return matched
}
