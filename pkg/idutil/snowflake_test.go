package idutil

import (
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/require"
)

func TestGenerateSnowflake(t *testing.T) {
	seen := map[int64]bool{}
	last := int64(0)
	for i := 0; i < 1000; i++ {
		id := GenerateSnowflake()
		require.False(t, seen[id])
		require.Greater(t, id, last)
		require.Equal(t, int64(0), snowflake.ParseInt64(id).Node())

		seen[id] = true
		last = id
	}
}
