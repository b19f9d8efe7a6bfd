package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var (
	redisOnce sync.Once
	redisSrv  *miniredis.Miniredis
)

// NewRedis starts a shared in-process Redis server once and returns it.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		srv, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisSrv = srv
	})
	return redisSrv
}

// RedisURL returns the connection URL of the shared server.
func RedisURL() string {
	return "redis://" + NewRedis().Addr()
}

// ClearRedis drops every key of the shared server.
func ClearRedis() {
	NewRedis().FlushAll()
}
