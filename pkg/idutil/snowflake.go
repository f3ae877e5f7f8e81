package idutil

import (
	"sync"

	"github.com/bwmarrin/snowflake"
)

var (
	node     *snowflake.Node
	nodeOnce sync.Once
)

// GenerateSnowflake returns a new unique id. All ids are generated by the node
// 0, so it is only unique inside a single process.
func GenerateSnowflake() int64 {
	nodeOnce.Do(func() {
		var err error
		node, err = snowflake.NewNode(0)
		if err != nil {
			panic(err)
		}
	})

	return node.Generate().Int64()
}
