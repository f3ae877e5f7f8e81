package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/questx-lab/leaderboard/config"
	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

func (s *srv) loadConfig() {
	s.ctx = xcontext.WithConfigs(s.ctx, config.Configs{
		Env:      getEnv("ENV", "local"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Database: config.DatabaseConfigs{
			Driver:     getEnv("DB_DRIVER", "mysql"),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "3306"),
			Database:   getEnv("DB_DATABASE", "leaderboard"),
			User:       getEnv("DB_USER", "mysql"),
			Password:   getEnv("DB_PASSWORD", "mysql"),
			SQLitePath: getEnv("DB_SQLITE_PATH", "leaderboard.db"),
		},
		ApiServer: config.APIServerConfigs{
			ServerConfigs: config.ServerConfigs{
				Host: getEnv("API_HOST", ""),
				Port: getEnv("API_PORT", "8080"),
			},
			AllowedOrigins: parseList(getEnv("API_ALLOWED_ORIGINS", "*")),
		},
		Redis: config.RedisConfigs{
			Addr:     getEnv("REDIS_ADDR", ""),
			CacheTTL: parseDuration(getEnv("REDIS_CACHE_TTL", "1m")),
		},
		Leaderboard: config.LeaderboardConfigs{
			BroadcastInterval:   time.Duration(parsePositiveInt(getEnv("BROADCAST_INTERVAL", "5"))) * time.Second,
			WebsocketPath:       getEnv("WS_PATH", "/"),
			MaxDisplayedResults: parseInt(getEnv("MAX_DISPLAYED_RESULTS", "10")),
		},
	})
}

func getEnv(key, fallback string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}

	return fallback
}

func parseDuration(s string) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		panic(fmt.Sprintf("invalid duration %q: %v", s, err))
	}

	return duration
}

func parseInt(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("invalid number %q: %v", s, err))
	}

	return i
}

func parsePositiveInt(s string) int {
	i := parseInt(s)
	if i <= 0 {
		panic(fmt.Sprintf("number must be positive, got %d", i))
	}

	return i
}

func parseList(s string) []string {
	result := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
