package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string

	Database    DatabaseConfigs
	ApiServer   APIServerConfigs
	Redis       RedisConfigs
	Leaderboard LeaderboardConfigs
}

type DatabaseConfigs struct {
	// Driver is either mysql or sqlite.
	Driver     string
	Host       string
	Port       string
	Database   string
	User       string
	Password   string
	SQLitePath string
}

func (d *DatabaseConfigs) ConnectionString() string {
	if d.Driver == "sqlite" {
		return d.SQLitePath
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
}

func (c ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

type APIServerConfigs struct {
	ServerConfigs
	AllowedOrigins []string
}

type RedisConfigs struct {
	// Addr is empty when the cache is disabled.
	Addr     string
	CacheTTL time.Duration
}

type LeaderboardConfigs struct {
	BroadcastInterval time.Duration

	// WebsocketPath is the path which live clients connect to.
	WebsocketPath string

	// MaxDisplayedResults is only consumed by presentation, the server always
	// returns the full ranking.
	MaxDisplayedResults int
}
