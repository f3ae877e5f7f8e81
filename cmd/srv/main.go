package main

import (
	"context"
	"os"

	"github.com/questx-lab/leaderboard/pkg/xcontext"
)

var server srv

func main() {
	server.ctx = context.Background()
	server.loadConfig()
	server.loadLogger()
	server.loadApp()

	err := server.app.Run(os.Args)
	if err != nil {
		xcontext.Logger(server.ctx).Errorf("Cannot run the command: %v", err)
	}

	// Syncing stderr may fail on some terminals, nothing to do about it.
	_ = xcontext.Logger(server.ctx).Sync()

	if err != nil {
		os.Exit(1)
	}
}
