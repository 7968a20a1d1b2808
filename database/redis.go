package database

import (
	"context"
	"log"
	"strconv"

	"github.com/redis/go-redis/v9"

	"studio_booking/config"
)

// ConnectRedis opens the redis client used for reservation locks. A nil client
// is returned when redis is not configured; callers fall back to plain
// transactional checks.
func ConnectRedis() *redis.Client {
	addr := config.Config("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, reservation locking runs without redis")
		return nil
	}

	dbIndex, _ := strconv.Atoi(config.ConfigDefault("REDIS_DB", "0"))
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.Config("REDIS_PASSWORD"),
		DB:       dbIndex,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("redis unreachable (%v), reservation locking runs without redis", err)
		return nil
	}
	return client
}
