// Package rdx caches rendered recipe pages and the recent-recipes
// projection in Redis. The cache is strictly best-effort: every failure is
// logged and treated as a miss so the service keeps working without Redis.
package rdx

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"time"

	"savora/globals"
	"savora/models"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

const (
	htmlTTL   = 5 * time.Minute
	recentTTL = 30 * time.Second
)

func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

func htmlKey(id string) string { return "recipe:html:" + id }

// CachedHTML returns a previously rendered page, if any.
func CachedHTML(id string) (string, bool) {
	if Conn == nil {
		return "", false
	}
	val, err := Conn.Get(globals.Ctx, htmlKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis get error:", err)
		}
		return "", false
	}
	return val, true
}

func CacheHTML(id, html string) {
	if Conn == nil {
		return
	}
	if err := Conn.Set(globals.Ctx, htmlKey(id), html, htmlTTL).Err(); err != nil {
		log.Println("Redis set error:", err)
	}
}

func recentKey(limit int) string {
	return "recipes:recent:" + strconv.Itoa(limit)
}

// CachedRecent returns the cached recent-list projection for a limit.
func CachedRecent(limit int) ([]models.RecipeSummary, bool) {
	if Conn == nil {
		return nil, false
	}
	val, err := Conn.Get(globals.Ctx, recentKey(limit)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("Redis get error:", err)
		}
		return nil, false
	}
	var summaries []models.RecipeSummary
	if err := json.Unmarshal([]byte(val), &summaries); err != nil {
		log.Println("Cached recent list unmarshal error:", err)
		return nil, false
	}
	return summaries, true
}

func CacheRecent(limit int, summaries []models.RecipeSummary) {
	if Conn == nil {
		return
	}
	data, err := json.Marshal(summaries)
	if err != nil {
		log.Println("Recent list marshal error:", err)
		return
	}
	if err := Conn.Set(globals.Ctx, recentKey(limit), data, recentTTL).Err(); err != nil {
		log.Println("Redis set error:", err)
	}
}

func Close() {
	if Conn == nil {
		return
	}
	if err := Conn.Close(); err != nil {
		log.Println("Redis close error:", err)
	}
}
