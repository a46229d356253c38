package queue_test

import (
	"log"
	"os"
	"testing"

	"go-gin-cinema-booking/internal/testutil"

	"github.com/redis/go-redis/v9"
)

// testRdb 為 nil 時 Redis 相關測試會 skip，記憶體 queue 測試照常執行
var testRdb *redis.Client

func TestMain(m *testing.M) {
	rdb, cleanup, err := testutil.SetupRedisOnly()
	if err != nil {
		log.Printf("redis unavailable, stream tests will be skipped: %v", err)
	} else {
		testRdb = rdb
	}

	code := m.Run()
	if cleanup != nil {
		cleanup()
	}
	os.Exit(code)
}

func requireRedis(t *testing.T) *redis.Client {
	t.Helper()
	if testRdb == nil {
		t.Skip("redis not available")
	}
	return testRdb
}
