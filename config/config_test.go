package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseConfigs_ConnectionString(t *testing.T) {
	mysql := DatabaseConfigs{
		Driver:   "mysql",
		Host:     "localhost",
		Port:     "3306",
		Database: "leaderboard",
		User:     "root",
		Password: "secret",
	}
	require.Equal(t,
		"root:secret@tcp(localhost:3306)/leaderboard?charset=utf8mb4&parseTime=True&loc=Local",
		mysql.ConnectionString())

	sqlite := DatabaseConfigs{Driver: "sqlite", SQLitePath: "leaderboard.db"}
	require.Equal(t, "leaderboard.db", sqlite.ConnectionString())
}

func TestServerConfigs_Address(t *testing.T) {
	require.Equal(t, ":8080", ServerConfigs{Port: "8080"}.Address())
	require.Equal(t, "0.0.0.0:80", ServerConfigs{Host: "0.0.0.0", Port: "80"}.Address())
}
